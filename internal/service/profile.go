package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/region"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// LookupRecorder receives successful account resolutions. Recording is
// best-effort; its failure never affects a lookup.
type LookupRecorder interface {
	RecordLookup(ctx context.Context, rec domain.LookupRecord) error
}

// ProfileService resolves a player identity and fans out to the
// independent per-player upstream endpoints, assembling one profile.
// defaultRegion is the shard used when no tag matches a known platform.
type ProfileService struct {
	riot          RiotAPI
	history       LookupRecorder
	defaultRegion region.Region
	logger        zerolog.Logger
}

func NewProfileService(api RiotAPI, history LookupRecorder, defaultRegion region.Region, logger zerolog.Logger) *ProfileService {
	return &ProfileService{riot: api, history: history, defaultRegion: defaultRegion, logger: logger}
}

// fanoutBranch pairs one upstream fetch with the default applied when it
// fails. The defaults table lives in branches(); nothing else decides
// degrade behavior.
type fanoutBranch struct {
	name     string
	fetch    func(ctx context.Context) error
	fallback func(p *domain.PlayerProfile)
}

// GetPlayerProfile resolves an identity into a full profile. regionTag
// selects the platform shard; when empty the identity's tag line is used
// as the hint, and unknown tags fall back to the configured default
// region.
//
// Account resolution is the only fatal step. Every fan-out branch fails
// soft to its documented default, so a resolvable identity always yields
// a profile.
func (s *ProfileService) GetPlayerProfile(ctx context.Context, identity domain.PlayerIdentity, regionTag string) (*domain.PlayerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	gameName := strings.TrimSpace(identity.GameName)
	tagLine := strings.TrimSpace(identity.TagLine)
	if gameName == "" || tagLine == "" {
		return nil, ErrInvalidInput
	}

	hint := regionTag
	if hint == "" {
		hint = tagLine
	}
	reg := region.ResolveOr(hint, s.defaultRegion)
	continent := reg.Continent()

	s.logger.Info().
		Str("game_name", gameName).
		Str("tag_line", tagLine).
		Str("region", reg.String()).
		Msg("resolving player profile")

	acc, err := s.riot.GetAccountByRiotID(ctx, continent, gameName, tagLine)
	if err != nil {
		s.logger.Warn().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("account resolution failed")
		return nil, mapUpstreamErr(err)
	}

	account := domain.Account{Puuid: acc.Puuid, GameName: acc.GameName, TagLine: acc.TagLine}
	s.recordLookup(account, reg)

	profile := &domain.PlayerProfile{
		Account: account,
		Region:  reg.String(),
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	g := new(errgroup.Group)
	for _, b := range s.branches(profile, account.Puuid, reg, continent) {
		g.Go(func() error {
			if err := b.fetch(apiCtx); err != nil {
				s.logger.Warn().
					Err(err).
					Str("branch", b.name).
					Str("puuid", account.Puuid).
					Msg("fan-out branch failed, using default")
				b.fallback(profile)
			}
			return nil
		})
	}
	// branches swallow their own failures, Wait never returns an error
	_ = g.Wait()

	s.logger.Info().Str("puuid", account.Puuid).Msg("player profile assembled")
	return profile, nil
}

// branches is the fan-out table. Each branch writes a distinct profile
// field, so no locking is needed between them.
func (s *ProfileService) branches(p *domain.PlayerProfile, puuid string, reg region.Region, continent region.Continent) []fanoutBranch {
	return []fanoutBranch{
		{
			name: "summoner",
			fetch: func(ctx context.Context) error {
				resp, err := s.riot.GetSummonerByPUUID(ctx, reg, puuid)
				if err != nil {
					return err
				}
				p.Summoner = &domain.SummonerRecord{
					Puuid:         resp.Puuid,
					SummonerLevel: resp.SummonerLevel,
					ProfileIconID: resp.ProfileIconID,
				}
				return nil
			},
			fallback: func(p *domain.PlayerProfile) { p.Summoner = nil },
		},
		{
			name: "ranked",
			fetch: func(ctx context.Context) error {
				resp, err := s.riot.GetLeagueEntriesByPUUID(ctx, reg, puuid)
				if err != nil {
					return err
				}
				// unranked in every queue is an empty list, not an error
				entries := make([]domain.RankedEntry, 0, len(resp))
				for _, e := range resp {
					entries = append(entries, domain.RankedEntry{
						QueueType:    e.QueueType,
						Tier:         e.Tier,
						Division:     e.Rank,
						LeaguePoints: e.LeaguePoints,
						Wins:         e.Wins,
						Losses:       e.Losses,
					})
				}
				p.Ranked = entries
				return nil
			},
			fallback: func(p *domain.PlayerProfile) { p.Ranked = []domain.RankedEntry{} },
		},
		{
			name: "mastery",
			fetch: func(ctx context.Context) error {
				resp, err := s.riot.GetTopChampionMasteries(ctx, reg, puuid, constants.TopMasteryCount)
				if err != nil {
					return err
				}
				entries := make([]domain.MasteryEntry, 0, len(resp))
				for _, m := range resp {
					entries = append(entries, domain.MasteryEntry{
						ChampionID:     m.ChampionID,
						ChampionLevel:  m.ChampionLevel,
						ChampionPoints: m.ChampionPoints,
					})
				}
				p.Mastery.Entries = entries
				return nil
			},
			fallback: func(p *domain.PlayerProfile) { p.Mastery.Entries = []domain.MasteryEntry{} },
		},
		{
			name: "mastery_score",
			fetch: func(ctx context.Context) error {
				score, err := s.riot.GetMasteryScore(ctx, reg, puuid)
				if err != nil {
					return err
				}
				p.Mastery.Score = score
				return nil
			},
			fallback: func(p *domain.PlayerProfile) { p.Mastery.Score = 0 },
		},
		{
			name: "matches",
			fetch: func(ctx context.Context) error {
				ids, err := s.riot.GetMatchIDsByPUUID(ctx, continent, puuid, constants.RecentMatchCount)
				if err != nil {
					return err
				}
				if ids == nil {
					ids = []string{}
				}
				p.RecentMatches = ids
				return nil
			},
			fallback: func(p *domain.PlayerProfile) { p.RecentMatches = []string{} },
		},
		{
			name: "live_game",
			fetch: func(ctx context.Context) error {
				resp, err := s.riot.GetActiveGameByPUUID(ctx, reg, puuid)
				if errors.Is(err, riot.ErrNotFound) {
					// not currently in a game, normal state
					p.LiveGame = nil
					return nil
				}
				if err != nil {
					return err
				}
				live := &domain.LiveGame{
					GameID:     resp.GameID,
					GameMode:   resp.GameMode,
					GameType:   resp.GameType,
					MapID:      resp.MapID,
					StartedAt:  time.UnixMilli(resp.GameStartTime),
					GameLength: time.Duration(resp.GameLength) * time.Second,
					PlatformID: resp.PlatformID,
				}
				for _, part := range resp.Participants {
					if part.Puuid == puuid {
						live.ChampionID = part.ChampionID
						break
					}
				}
				p.LiveGame = live
				return nil
			},
			fallback: func(p *domain.PlayerProfile) { p.LiveGame = nil },
		},
	}
}

// recordLookup writes the resolution to history without blocking the
// lookup itself.
func (s *ProfileService) recordLookup(acc domain.Account, reg region.Region) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
		defer cancel()

		rec := domain.LookupRecord{
			Puuid:    acc.Puuid,
			GameName: acc.GameName,
			TagLine:  acc.TagLine,
			Region:   reg.String(),
		}
		if err := s.history.RecordLookup(ctx, rec); err != nil {
			s.logger.Warn().Err(err).Str("puuid", acc.Puuid).Msg("failed to record lookup")
		}
	}()
}
