package service

import (
	"context"

	"league-tracker/internal/region"
	"league-tracker/internal/riot"
)

// RiotAPI is the slice of the upstream client the services consume.
// Satisfied by *riot.Client; faked in tests.
type RiotAPI interface {
	GetAccountByRiotID(ctx context.Context, continent region.Continent, gameName, tagLine string) (*riot.AccountResponse, error)
	GetSummonerByPUUID(ctx context.Context, r region.Region, puuid string) (*riot.SummonerResponse, error)
	GetLeagueEntriesByPUUID(ctx context.Context, r region.Region, puuid string) ([]riot.LeagueEntryResponse, error)
	GetTopChampionMasteries(ctx context.Context, r region.Region, puuid string, count int) ([]riot.MasteryResponse, error)
	GetMasteryScore(ctx context.Context, r region.Region, puuid string) (int, error)
	GetMatchIDsByPUUID(ctx context.Context, continent region.Continent, puuid string, count int) ([]string, error)
	GetMatchByID(ctx context.Context, continent region.Continent, matchID string) (*riot.MatchResponse, error)
	GetActiveGameByPUUID(ctx context.Context, r region.Region, puuid string) (*riot.ActiveGameResponse, error)
}
