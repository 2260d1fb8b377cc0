package service

import (
	"context"
	"fmt"
	"time"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/region"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MatchService fetches full match detail and extracts the record of a
// single target player.
type MatchService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewMatchService(api RiotAPI, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: api, logger: logger}
}

// GetMatchDetail fetches one match and returns the target player's
// normalized result. A participant list that does not contain the puuid
// is a data-integrity anomaly and is surfaced as ErrPlayerNotFound
// rather than silently dropped.
func (s *MatchService) GetMatchDetail(ctx context.Context, matchID, puuid string, reg region.Region) (*domain.MatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	s.logger.Debug().Str("match_id", matchID).Str("puuid", puuid).Msg("fetching match detail")

	resp, err := s.riot.GetMatchByID(ctx, reg.Continent(), matchID)
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to fetch match")
		return nil, mapUpstreamErr(err)
	}

	for _, part := range resp.Info.Participants {
		if part.Puuid != puuid {
			continue
		}
		return &domain.MatchResult{
			MatchID:    resp.Metadata.MatchID,
			Puuid:      part.Puuid,
			Champion:   part.ChampionName,
			ChampionID: part.ChampionID,
			Kills:      part.Kills,
			Deaths:     part.Deaths,
			Assists:    part.Assists,
			Win:        part.Win,
			Duration:   time.Duration(resp.Info.GameDuration) * time.Second,
			GameMode:   resp.Info.GameMode,
			QueueID:    resp.Info.QueueID,
			PlayedAt:   time.UnixMilli(resp.Info.GameCreation),
		}, nil
	}

	s.logger.Error().Str("match_id", matchID).Str("puuid", puuid).Msg("puuid missing from match participant list")
	return nil, fmt.Errorf("%w: puuid %s not in match %s", ErrPlayerNotFound, puuid, matchID)
}

// GetRecentResults fetches detail for the most recent match ids with a
// bounded concurrent fan-out. Individual match failures degrade soft:
// the failed id is skipped and the rest are returned in upstream order.
func (s *MatchService) GetRecentResults(ctx context.Context, puuid string, reg region.Region, matchIDs []string) ([]domain.MatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if len(matchIDs) > constants.MatchDetailFanout {
		matchIDs = matchIDs[:constants.MatchDetailFanout]
	}

	results := make([]*domain.MatchResult, len(matchIDs))

	g := new(errgroup.Group)
	g.SetLimit(constants.MatchDetailParallel)
	for i, id := range matchIDs {
		g.Go(func() error {
			res, err := s.GetMatchDetail(ctx, id, puuid, reg)
			if err != nil {
				s.logger.Warn().Err(err).Str("match_id", id).Msg("skipping match in summary")
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domain.MatchResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
