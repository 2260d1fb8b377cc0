package riot

// Response shapes for the subset of the Riot API this service consumes.
// Field names follow the wire format of each endpoint.

// AccountResponse is the return of /riot/account/v1/accounts/by-riot-id.
type AccountResponse struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerResponse is the return of /lol/summoner/v4/summoners/by-puuid.
type SummonerResponse struct {
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntryResponse is one element of /lol/league/v4/entries/by-puuid.
type LeagueEntryResponse struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
}

// MasteryResponse is one element of /lol/champion-mastery/v4.
type MasteryResponse struct {
	ChampionID     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime   int64 `json:"lastPlayTime"`
}

// MatchResponse is the return of /lol/match/v5/matches/{matchId}.
type MatchResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation int64              `json:"gameCreation"`
	GameDuration int                `json:"gameDuration"`
	GameMode     string             `json:"gameMode"`
	GameVersion  string             `json:"gameVersion"`
	QueueID      int                `json:"queueId"`
	Participants []MatchParticipant `json:"participants"`
}

type MatchParticipant struct {
	Puuid          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	Win            bool   `json:"win"`
}

// ActiveGameResponse is the return of /lol/spectator/v5/active-games.
type ActiveGameResponse struct {
	GameID        int64                   `json:"gameId"`
	GameMode      string                  `json:"gameMode"`
	GameType      string                  `json:"gameType"`
	MapID         int                     `json:"mapId"`
	GameStartTime int64                   `json:"gameStartTime"`
	GameLength    int64                   `json:"gameLength"`
	PlatformID    string                  `json:"platformId"`
	Participants  []ActiveGameParticipant `json:"participants"`
}

type ActiveGameParticipant struct {
	Puuid      string `json:"puuid"`
	ChampionID int    `json:"championId"`
	TeamID     int    `json:"teamId"`
	RiotID     string `json:"riotId"`
}
