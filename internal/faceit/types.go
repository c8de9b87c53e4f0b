package faceit

// Player holds the fields we need from the /players endpoints.
type Player struct {
	PlayerID   string                 `json:"player_id"`
	Nickname   string                 `json:"nickname"`
	Avatar     string                 `json:"avatar"`
	Country    string                 `json:"country"`
	CoverImage string                 `json:"cover_image"`
	FaceitURL  string                 `json:"faceit_url"`
	Verified   bool                   `json:"verified"`
	Games      map[string]GameProfile `json:"games"`
}

// GameProfile is a player's standing in one game.
type GameProfile struct {
	GamePlayerID string `json:"game_player_id"`
	SkillLevel   int    `json:"skill_level"`
	FaceitELO    int    `json:"faceit_elo"`
	Region       string `json:"region"`
}

// MatchHistoryItem is one entry from /players/{id}/history.
type MatchHistoryItem struct {
	MatchID         string `json:"match_id"`
	GameMode        string `json:"game_mode"`
	CompetitionName string `json:"competition_name"`
	Status          string `json:"status"`
	StartedAt       int64  `json:"started_at"`
	FinishedAt      int64  `json:"finished_at"`
	Teams           struct {
		Faction1 HistoryFaction `json:"faction1"`
		Faction2 HistoryFaction `json:"faction2"`
	} `json:"teams"`
	Results MatchResults `json:"results"`
}

// HistoryFaction is one side of a history entry.
type HistoryFaction struct {
	TeamID   string          `json:"team_id"`
	Nickname string          `json:"nickname"`
	Players  []HistoryPlayer `json:"players"`
}

// HistoryPlayer is a player listed in a history faction.
type HistoryPlayer struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
}

// MatchResults is the winner and per-faction score of a finished match.
type MatchResults struct {
	Winner string         `json:"winner"`
	Score  map[string]int `json:"score"`
}

// PlayerStats is the /players/{id}/stats/{game} response. Lifetime mixes
// string values with the "Recent Results" array.
type PlayerStats struct {
	PlayerID string         `json:"player_id"`
	GameID   string         `json:"game_id"`
	Lifetime map[string]any `json:"lifetime"`
}

// MatchDetail holds the fields we need from /matches/{id}.
type MatchDetail struct {
	MatchID         string `json:"match_id"`
	Region          string `json:"region"`
	CompetitionName string `json:"competition_name"`
	Status          string `json:"status"`
	StartedAt       int64  `json:"started_at"`
	FinishedAt      int64  `json:"finished_at"`
	Teams           struct {
		Faction1 Faction `json:"faction1"`
		Faction2 Faction `json:"faction2"`
	} `json:"teams"`
	Voting struct {
		Map struct {
			Pick     []string    `json:"pick"`
			Entities []MapEntity `json:"entities"`
		} `json:"map"`
		Location struct {
			Pick     []string         `json:"pick"`
			Entities []LocationEntity `json:"entities"`
		} `json:"location"`
	} `json:"voting"`
	Results MatchResults `json:"results"`
}

// MapName returns the picked map name, or empty string if unavailable.
func (m *MatchDetail) MapName() string {
	if len(m.Voting.Map.Pick) > 0 {
		return m.Voting.Map.Pick[0]
	}
	return ""
}

// LocationName returns the picked server location, or empty string.
func (m *MatchDetail) LocationName() string {
	if len(m.Voting.Location.Pick) > 0 {
		return m.Voting.Location.Pick[0]
	}
	return ""
}

// Faction is one team in a match detail.
type Faction struct {
	FactionID string         `json:"faction_id"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	Roster    []RosterPlayer `json:"roster"`
}

// RosterPlayer is a player listed on a faction roster.
type RosterPlayer struct {
	PlayerID       string `json:"player_id"`
	Nickname       string `json:"nickname"`
	Avatar         string `json:"avatar"`
	GameSkillLevel int    `json:"game_skill_level"`
}

// MapEntity is a map offered in the veto.
type MapEntity struct {
	GameMapID string `json:"game_map_id"`
	Name      string `json:"name"`
	ImageLG   string `json:"image_lg"`
	ImageSM   string `json:"image_sm"`
}

// LocationEntity is a server location offered in the veto.
type LocationEntity struct {
	Name    string `json:"name"`
	ImageLG string `json:"image_lg"`
	ImageSM string `json:"image_sm"`
}

// MatchStats is the /matches/{id}/stats response: one Round per map played.
type MatchStats struct {
	Rounds []Round `json:"rounds"`
}

// Round is the stats of one played map.
type Round struct {
	MatchID    string            `json:"match_id"`
	MatchRound string            `json:"match_round"`
	BestOf     string            `json:"best_of"`
	GameMode   string            `json:"game_mode"`
	RoundStats map[string]string `json:"round_stats"`
	Teams      []StatsTeam       `json:"teams"`
}

// StatsTeam is one team's stats and players within a Round.
type StatsTeam struct {
	TeamID    string            `json:"team_id"`
	Premade   bool              `json:"premade"`
	TeamStats map[string]string `json:"team_stats"`
	Players   []StatsPlayer     `json:"players"`
}

// StatsPlayer is one player's line within a StatsTeam.
type StatsPlayer struct {
	PlayerID    string            `json:"player_id"`
	Nickname    string            `json:"nickname"`
	PlayerStats map[string]string `json:"player_stats"`
}
