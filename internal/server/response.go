package server

import (
	"time"

	"league-tracker/internal/domain"
)

type profileResponse struct {
	Account       accountResponse    `json:"account"`
	Region        string             `json:"region"`
	Summoner      *summonerResponse  `json:"summoner"`
	Ranked        []rankedResponse   `json:"ranked"`
	Mastery       masteryResponse    `json:"mastery"`
	RecentMatches []string           `json:"recentMatches"`
	LiveGame      *liveGameResponse  `json:"liveGame"`
	RecentResults []matchResultEntry `json:"recentResults,omitempty"`
}

type accountResponse struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type summonerResponse struct {
	SummonerLevel int `json:"summonerLevel"`
	ProfileIconID int `json:"profileIconId"`
}

type rankedResponse struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Division     string `json:"division"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

type masteryResponse struct {
	Entries []masteryEntry `json:"entries"`
	Score   int            `json:"score"`
}

type masteryEntry struct {
	ChampionID     int `json:"championId"`
	ChampionLevel  int `json:"championLevel"`
	ChampionPoints int `json:"championPoints"`
}

type liveGameResponse struct {
	GameID     int64  `json:"gameId"`
	GameMode   string `json:"gameMode"`
	GameType   string `json:"gameType"`
	MapID      int    `json:"mapId"`
	StartedAt  string `json:"startedAt"`
	LengthSecs int64  `json:"lengthSeconds"`
	PlatformID string `json:"platformId"`
	ChampionID int    `json:"championId"`
}

type matchResultEntry struct {
	MatchID      string `json:"matchId"`
	Champion     string `json:"champion"`
	ChampionID   int    `json:"championId"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	Win          bool   `json:"win"`
	DurationSecs int    `json:"durationSeconds"`
	GameMode     string `json:"gameMode"`
	QueueID      int    `json:"queueId"`
	PlayedAt     string `json:"playedAt"`
}

type searchResponse struct {
	Suggestions []suggestionResponse `json:"suggestions"`
}

type suggestionResponse struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Region   string `json:"region"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func toProfileResponse(p *domain.PlayerProfile) *profileResponse {
	resp := &profileResponse{
		Account: accountResponse{
			Puuid:    p.Account.Puuid,
			GameName: p.Account.GameName,
			TagLine:  p.Account.TagLine,
		},
		Region:        p.Region,
		Ranked:        make([]rankedResponse, 0, len(p.Ranked)),
		RecentMatches: p.RecentMatches,
		Mastery: masteryResponse{
			Entries: make([]masteryEntry, 0, len(p.Mastery.Entries)),
			Score:   p.Mastery.Score,
		},
	}
	if resp.RecentMatches == nil {
		resp.RecentMatches = []string{}
	}

	if p.Summoner != nil {
		resp.Summoner = &summonerResponse{
			SummonerLevel: p.Summoner.SummonerLevel,
			ProfileIconID: p.Summoner.ProfileIconID,
		}
	}

	for _, e := range p.Ranked {
		resp.Ranked = append(resp.Ranked, rankedResponse{
			QueueType:    e.QueueType,
			Tier:         e.Tier,
			Division:     e.Division,
			LeaguePoints: e.LeaguePoints,
			Wins:         e.Wins,
			Losses:       e.Losses,
		})
	}

	for _, m := range p.Mastery.Entries {
		resp.Mastery.Entries = append(resp.Mastery.Entries, masteryEntry{
			ChampionID:     m.ChampionID,
			ChampionLevel:  m.ChampionLevel,
			ChampionPoints: m.ChampionPoints,
		})
	}

	if p.LiveGame != nil {
		resp.LiveGame = &liveGameResponse{
			GameID:     p.LiveGame.GameID,
			GameMode:   p.LiveGame.GameMode,
			GameType:   p.LiveGame.GameType,
			MapID:      p.LiveGame.MapID,
			StartedAt:  p.LiveGame.StartedAt.Format(time.RFC3339),
			LengthSecs: int64(p.LiveGame.GameLength.Seconds()),
			PlatformID: p.LiveGame.PlatformID,
			ChampionID: p.LiveGame.ChampionID,
		}
	}

	return resp
}

func toMatchResult(m domain.MatchResult) matchResultEntry {
	return matchResultEntry{
		MatchID:      m.MatchID,
		Champion:     m.Champion,
		ChampionID:   m.ChampionID,
		Kills:        m.Kills,
		Deaths:       m.Deaths,
		Assists:      m.Assists,
		Win:          m.Win,
		DurationSecs: int(m.Duration.Seconds()),
		GameMode:     m.GameMode,
		QueueID:      m.QueueID,
		PlayedAt:     m.PlayedAt.Format(time.RFC3339),
	}
}

func toMatchResults(results []domain.MatchResult) []matchResultEntry {
	entries := make([]matchResultEntry, 0, len(results))
	for _, m := range results {
		entries = append(entries, toMatchResult(m))
	}
	return entries
}
