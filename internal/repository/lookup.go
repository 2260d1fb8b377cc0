package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"league-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type LookupRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewLookupRepository(sqlDB *sql.DB, logger zerolog.Logger) *LookupRepository {
	return &LookupRepository{db: sqlDB, logger: logger}
}

// Insert records one resolved lookup. The latest resolution for a puuid
// wins, so renamed accounts surface under their current riot id.
func (r *LookupRepository) Insert(ctx context.Context, rec domain.LookupRecord) error {
	if rec.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate lookup id: %w", err)
		}
		rec.ID = id
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lookups (id, puuid, game_name, tag_line, region, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(puuid) DO UPDATE SET
			game_name = excluded.game_name,
			tag_line = excluded.tag_line,
			region = excluded.region,
			created_at = excluded.created_at`,
		rec.ID, rec.Puuid, rec.GameName, rec.TagLine, rec.Region, rec.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", rec.Puuid).Msg("failed to insert lookup")
		return fmt.Errorf("failed to insert lookup: %w", err)
	}
	return nil
}

// Search returns the most recently resolved identities matching the query
// by name or tag.
func (r *LookupRepository) Search(ctx context.Context, query string, limit int) ([]domain.LookupRecord, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, puuid, game_name, tag_line, region, created_at
		FROM lookups
		WHERE game_name LIKE ? OR tag_line LIKE ?
		ORDER BY created_at DESC
		LIMIT ?`,
		pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search lookups: %w", err)
	}
	defer rows.Close()

	var records []domain.LookupRecord
	for rows.Next() {
		var rec domain.LookupRecord
		if err := rows.Scan(&rec.ID, &rec.Puuid, &rec.GameName, &rec.TagLine, &rec.Region, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lookups: %w", err)
	}
	return records, nil
}
