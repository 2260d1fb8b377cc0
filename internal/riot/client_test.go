package riot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"league-tracker/internal/config"
	"league-tracker/internal/region"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&config.Config{RiotAPIKey: "test-key"}, zerolog.Nop())
	c.host = func(routing string) string { return srv.URL }
	return c
}

func TestGetSummonerByPUUID(t *testing.T) {
	var gotToken, gotPath atomic.Value
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken.Store(r.Header.Get("X-Riot-Token"))
		gotPath.Store(r.URL.Path)
		w.Write([]byte(`{"puuid":"p1","profileIconId":29,"summonerLevel":742}`))
	})

	resp, err := c.GetSummonerByPUUID(context.Background(), region.KR, "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", resp.Puuid)
	assert.Equal(t, 742, resp.SummonerLevel)
	assert.Equal(t, 29, resp.ProfileIconID)
	assert.Equal(t, "test-key", gotToken.Load())
	assert.Equal(t, "/lol/summoner/v4/summoners/by-puuid/p1", gotPath.Load())
}

func TestGetMasteryScoreBareInteger(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`412`))
	})

	score, err := c.GetMasteryScore(context.Background(), region.NA1, "p1")
	require.NoError(t, err)
	assert.Equal(t, 412, score)
}

func TestNotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetAccountByRiotID(context.Background(), region.Americas, "Nobody", "NA1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestServerErrorIsRetriedThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"puuid":"p1","gameName":"Faker","tagLine":"T1"}`))
	})

	resp, err := c.GetAccountByRiotID(context.Background(), region.Asia, "Faker", "T1")
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.Puuid)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRateLimitExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GetMatchIDsByPUUID(context.Background(), region.Asia, "p1", 20)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, int32(3), calls.Load())

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 429, se.Code)
	assert.Equal(t, time.Second, se.RetryAfter)
}

func TestMalformedBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"puuid":`))
	})

	_, err := c.GetSummonerByPUUID(context.Background(), region.NA1, "p1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRateLimitHeadersTracked(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-App-Rate-Limit", "20:1,100:120")
		w.Header().Set("X-App-Rate-Limit-Count", "3:1,14:120")
		w.Write([]byte(`[]`))
	})

	_, err := c.GetLeagueEntriesByPUUID(context.Background(), region.NA1, "p1")
	require.NoError(t, err)

	info := c.GetRateLimitInfo()
	assert.Equal(t, "20:1,100:120", info.AppLimit)
	assert.Equal(t, "3:1,14:120", info.AppCount)
	assert.False(t, info.UpdatedAt.IsZero())
}

func TestStatusErrorTaxonomy(t *testing.T) {
	tests := []struct {
		code      int
		want      error
		retryable bool
	}{
		{404, ErrNotFound, false},
		{429, ErrRejected, true},
		{401, ErrRejected, false},
		{403, ErrRejected, false},
		{500, ErrUnavailable, true},
		{503, ErrUnavailable, true},
	}

	for _, tt := range tests {
		se := &StatusError{Code: tt.code}
		assert.True(t, errors.Is(se, tt.want), "code %d", tt.code)
		assert.Equal(t, tt.retryable, se.Retryable(), "code %d", tt.code)
	}
}
