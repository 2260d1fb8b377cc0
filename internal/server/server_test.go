package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"league-tracker/internal/domain"
	"league-tracker/internal/region"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRiot struct {
	accountErr error
}

func (s *stubRiot) GetAccountByRiotID(ctx context.Context, continent region.Continent, gameName, tagLine string) (*riot.AccountResponse, error) {
	if s.accountErr != nil {
		return nil, s.accountErr
	}
	return &riot.AccountResponse{Puuid: "p1", GameName: gameName, TagLine: tagLine}, nil
}

func (s *stubRiot) GetSummonerByPUUID(ctx context.Context, r region.Region, puuid string) (*riot.SummonerResponse, error) {
	return &riot.SummonerResponse{Puuid: puuid, SummonerLevel: 100, ProfileIconID: 1}, nil
}

func (s *stubRiot) GetLeagueEntriesByPUUID(ctx context.Context, r region.Region, puuid string) ([]riot.LeagueEntryResponse, error) {
	return []riot.LeagueEntryResponse{{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "IV", LeaguePoints: 21}}, nil
}

func (s *stubRiot) GetTopChampionMasteries(ctx context.Context, r region.Region, puuid string, count int) ([]riot.MasteryResponse, error) {
	return []riot.MasteryResponse{{ChampionID: 103, ChampionLevel: 7, ChampionPoints: 98765}}, nil
}

func (s *stubRiot) GetMasteryScore(ctx context.Context, r region.Region, puuid string) (int, error) {
	return 77, nil
}

func (s *stubRiot) GetMatchIDsByPUUID(ctx context.Context, continent region.Continent, puuid string, count int) ([]string, error) {
	return []string{"NA1_2", "NA1_1"}, nil
}

func (s *stubRiot) GetMatchByID(ctx context.Context, continent region.Continent, matchID string) (*riot.MatchResponse, error) {
	return &riot.MatchResponse{
		Metadata: riot.MatchMetadata{MatchID: matchID, Participants: []string{"p1"}},
		Info: riot.MatchInfo{
			GameMode:     "CLASSIC",
			GameDuration: 1800,
			Participants: []riot.MatchParticipant{
				{Puuid: "p1", ChampionName: "Ahri", ChampionID: 103, Kills: 5, Deaths: 2, Assists: 11, Win: true},
			},
		},
	}, nil
}

func (s *stubRiot) GetActiveGameByPUUID(ctx context.Context, r region.Region, puuid string) (*riot.ActiveGameResponse, error) {
	return nil, riot.ErrNotFound
}

type stubStore struct {
	records []domain.LookupRecord
}

func (s *stubStore) Insert(ctx context.Context, rec domain.LookupRecord) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *stubStore) Search(ctx context.Context, query string, limit int) ([]domain.LookupRecord, error) {
	return s.records, nil
}

func newTestServer(api service.RiotAPI) *httptest.Server {
	log := zerolog.Nop()
	historySvc := service.NewHistoryService(&stubStore{records: []domain.LookupRecord{
		{Puuid: "p1", GameName: "Faker", TagLine: "T1", Region: "kr"},
	}}, log)
	profileSvc := service.NewProfileService(api, historySvc, region.DefaultRegion, log)
	matchSvc := service.NewMatchService(api, log)

	s := server.New(profileSvc, matchSvc, historySvc, region.DefaultRegion, log)
	return httptest.NewServer(s.Routes())
}

func TestGetPlayerEndpoint(t *testing.T) {
	srv := newTestServer(&stubRiot{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/players/Faker/T1?region=kr")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Account struct {
			Puuid    string `json:"puuid"`
			GameName string `json:"gameName"`
		} `json:"account"`
		Region string `json:"region"`
		Ranked []struct {
			Tier string `json:"tier"`
		} `json:"ranked"`
		Mastery struct {
			Score int `json:"score"`
		} `json:"mastery"`
		RecentMatches []string        `json:"recentMatches"`
		LiveGame      json.RawMessage `json:"liveGame"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "p1", body.Account.Puuid)
	assert.Equal(t, "kr", body.Region)
	require.Len(t, body.Ranked, 1)
	assert.Equal(t, "GOLD", body.Ranked[0].Tier)
	assert.Equal(t, 77, body.Mastery.Score)
	assert.Equal(t, []string{"NA1_2", "NA1_1"}, body.RecentMatches)
	assert.Equal(t, "null", string(body.LiveGame))
}

func TestGetPlayerEndpointNotFound(t *testing.T) {
	srv := newTestServer(&stubRiot{accountErr: &riot.StatusError{Code: 404}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/players/Nobody/XX?region=na1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPlayerEndpointUpstreamDown(t *testing.T) {
	srv := newTestServer(&stubRiot{accountErr: riot.ErrUnavailable})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/players/Faker/T1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetPlayerEndpointRejected(t *testing.T) {
	srv := newTestServer(&stubRiot{accountErr: &riot.StatusError{Code: 429}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/players/Faker/T1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGetMatchEndpoint(t *testing.T) {
	srv := newTestServer(&stubRiot{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/matches/NA1_1?puuid=p1&region=na1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		MatchID  string `json:"matchId"`
		Champion string `json:"champion"`
		Win      bool   `json:"win"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NA1_1", body.MatchID)
	assert.Equal(t, "Ahri", body.Champion)
	assert.True(t, body.Win)
}

func TestGetMatchEndpointRequiresPuuid(t *testing.T) {
	srv := newTestServer(&stubRiot{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/matches/NA1_1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(&stubRiot{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/search?q=Fak")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Suggestions []struct {
			GameName string `json:"gameName"`
			TagLine  string `json:"tagLine"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Suggestions, 1)
	assert.Equal(t, "Faker", body.Suggestions[0].GameName)
}
