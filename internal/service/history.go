package service

import (
	"context"
	"strings"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// LookupStore persists resolved lookups and answers suggestion queries.
// Satisfied by *repository.LookupRepository.
type LookupStore interface {
	Insert(ctx context.Context, rec domain.LookupRecord) error
	Search(ctx context.Context, query string, limit int) ([]domain.LookupRecord, error)
}

// HistoryService keeps a trail of successful account resolutions and
// serves search suggestions from it. Profiles themselves are never
// cached; only the identity-to-puuid resolution is remembered.
type HistoryService struct {
	store  LookupStore
	logger zerolog.Logger
}

func NewHistoryService(store LookupStore, logger zerolog.Logger) *HistoryService {
	return &HistoryService{store: store, logger: logger}
}

func (s *HistoryService) RecordLookup(ctx context.Context, rec domain.LookupRecord) error {
	return s.store.Insert(ctx, rec)
}

func (s *HistoryService) SearchSuggestions(ctx context.Context, query string) ([]domain.LookupRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.LookupRecord{}, nil
	}

	s.logger.Debug().Str("query", query).Msg("searching lookup history")

	records, err := s.store.Search(ctx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search lookup history")
		return nil, err
	}

	s.logger.Info().Int("count", len(records)).Str("query", query).Msg("search completed")
	return records, nil
}
