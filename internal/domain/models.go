package domain

import "time"

// PlayerIdentity is the user-supplied lookup key: a riot id split into its
// display name and tag.
type PlayerIdentity struct {
	GameName string
	TagLine  string
}

// Account is the resolved identity. Puuid is the join key for every
// per-player upstream query.
type Account struct {
	Puuid    string
	GameName string
	TagLine  string
}

type SummonerRecord struct {
	Puuid         string
	SummonerLevel int
	ProfileIconID int
}

type RankedEntry struct {
	QueueType    string
	Tier         string
	Division     string
	LeaguePoints int
	Wins         int
	Losses       int
}

type MasteryEntry struct {
	ChampionID     int
	ChampionLevel  int
	ChampionPoints int
}

// Mastery groups the top mastery entries with the account-wide score the
// upstream computes.
type Mastery struct {
	Entries []MasteryEntry
	Score   int
}

// LiveGame describes an in-progress match. A nil *LiveGame on the profile
// means the player is not currently in a game, which is a normal state.
type LiveGame struct {
	GameID     int64
	GameMode   string
	GameType   string
	MapID      int
	StartedAt  time.Time
	GameLength time.Duration
	PlatformID string
	ChampionID int
}

// PlayerProfile is the aggregated lookup result. Account is always
// populated; every other field degrades independently to its zero default
// when the corresponding upstream branch fails.
type PlayerProfile struct {
	Account       Account
	Region        string
	Summoner      *SummonerRecord
	Ranked        []RankedEntry
	Mastery       Mastery
	RecentMatches []string
	LiveGame      *LiveGame
}

// MatchResult is one player's normalized record from a single match.
type MatchResult struct {
	MatchID    string
	Puuid      string
	Champion   string
	ChampionID int
	Kills      int
	Deaths     int
	Assists    int
	Win        bool
	Duration   time.Duration
	GameMode   string
	QueueID    int
	PlayedAt   time.Time
}

// LookupRecord is a row in the lookup history store, written after each
// successful account resolution and used for search suggestions.
type LookupRecord struct {
	ID        string
	Puuid     string
	GameName  string
	TagLine   string
	Region    string
	CreatedAt time.Time
}
