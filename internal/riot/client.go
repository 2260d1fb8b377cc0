package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/region"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/valyala/fasthttp"
)

// Client issues authenticated requests against the Riot API. The API key
// is injected at construction; nothing is read from ambient scope.
type Client struct {
	apiKey string
	client *fasthttp.Client
	logger zerolog.Logger

	// host rewrites a routing value (platform or continent) into a base
	// URL. Overridden in tests to point at a local server.
	host func(routing string) string

	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the app-level rate limit headers Riot returns on
// every response. Tracked for diagnostics only; enforcement is left to
// the upstream and surfaced as ErrRejected.
type RateLimitInfo struct {
	AppLimit    string    `json:"app_limit"`
	AppCount    string    `json:"app_count"`
	MethodLimit string    `json:"method_limit"`
	MethodCount string    `json:"method_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
		host: func(routing string) string {
			return fmt.Sprintf("https://%s.api.riotgames.com", routing)
		},
	}
}

func (c *Client) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetAccountByRiotID resolves a riot id to an account. Account endpoints
// are scoped continentally, not per platform.
func (c *Client) GetAccountByRiotID(ctx context.Context, continent region.Continent, gameName, tagLine string) (*AccountResponse, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.host(string(continent)), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[AccountResponse](ctx, c, u)
}

func (c *Client) GetSummonerByPUUID(ctx context.Context, r region.Region, puuid string) (*SummonerResponse, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.host(r.String()), puuid)
	return doRequest[SummonerResponse](ctx, c, u)
}

func (c *Client) GetLeagueEntriesByPUUID(ctx context.Context, r region.Region, puuid string) ([]LeagueEntryResponse, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.host(r.String()), puuid)
	entries, err := doRequest[[]LeagueEntryResponse](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *Client) GetTopChampionMasteries(ctx context.Context, r region.Region, puuid string, count int) ([]MasteryResponse, error) {
	u := fmt.Sprintf("%s/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top?count=%d", c.host(r.String()), puuid, count)
	masteries, err := doRequest[[]MasteryResponse](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *masteries, nil
}

// GetMasteryScore returns the aggregate mastery score, a bare integer body.
func (c *Client) GetMasteryScore(ctx context.Context, r region.Region, puuid string) (int, error) {
	u := fmt.Sprintf("%s/lol/champion-mastery/v4/scores/by-puuid/%s", c.host(r.String()), puuid)
	score, err := doRequest[int](ctx, c, u)
	if err != nil {
		return 0, err
	}
	return *score, nil
}

// GetMatchIDsByPUUID returns recent match ids, most recent first. Match
// endpoints are scoped continentally.
func (c *Client) GetMatchIDsByPUUID(ctx context.Context, continent region.Continent, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d", c.host(string(continent)), puuid, count)
	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *Client) GetMatchByID(ctx context.Context, continent region.Continent, matchID string) (*MatchResponse, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.host(string(continent)), url.PathEscape(matchID))
	return doRequest[MatchResponse](ctx, c, u)
}

func (c *Client) GetActiveGameByPUUID(ctx context.Context, r region.Region, puuid string) (*ActiveGameResponse, error) {
	u := fmt.Sprintf("%s/lol/spectator/v5/active-games/by-summoner/%s", c.host(r.String()), puuid)
	return doRequest[ActiveGameResponse](ctx, c, u)
}

// doRequest issues one GET with a bounded backoff loop. Only 429 and 5xx
// (and raw transport failures) are retried; 404 and other rejections are
// definitive and returned immediately.
func doRequest[T any](ctx context.Context, c *Client, u string) (*T, error) {
	var body []byte
	backoff := retry.WithMaxRetries(constants.RetryMaxAttempts-1, retry.NewFibonacci(constants.RetryInitialDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		b, err := c.get(ctx, u)
		if err != nil {
			var se *StatusError
			if errors.As(err, &se) {
				if se.Retryable() {
					return retry.RetryableError(err)
				}
				return err
			}
			// transport-level failure
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrUnavailable, err))
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", c.apiKey)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	c.updateRateLimit(resp)

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		se := &StatusError{Code: code}
		if v := string(resp.Header.Peek("Retry-After")); v != "" {
			if secs, err := strconv.Atoi(v); err == nil {
				se.RetryAfter = time.Duration(secs) * time.Second
			}
		}
		c.logger.Debug().Int("status", code).Str("url", u).Msg("riot api non-ok response")
		return nil, se
	}

	// body is owned by the pooled response, copy before release
	return append([]byte(nil), resp.Body()...), nil
}
