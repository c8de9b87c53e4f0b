package model

import (
	"time"

	"github.com/pable/go-faceit-insights/internal/stats"
)

// UnknownTeam is recorded on players whose team cannot be resolved from
// either the match roster or the stats payload.
const UnknownTeam = "Unknown"

// PlayerRecord is one player's line in a single match, or a lifetime
// profile projected into the same shape.
type PlayerRecord struct {
	PlayerID   string
	Nickname   string
	Avatar     string
	SkillLevel int // 0 when unknown
	Stats      stats.Map
}

// Team returns the team name recorded on the player's stats.
func (p PlayerRecord) Team() string {
	return p.Stats.Team()
}

// TeamInfo describes one side of a match.
type TeamInfo struct {
	ID      string
	Name    string
	Avatar  string
	Premade bool
	Stats   stats.Map // team_stats: half scores, final score, team headshots
}

// FinalScore returns the team's final score from its team stats.
func (t TeamInfo) FinalScore() int { return t.Stats.Count(stats.KeyFinalScore) }

// Venue is a map or server location picked during veto.
type Venue struct {
	ID    string
	Name  string
	Image string
}

// Match is the in-memory snapshot of one played map that all derivation
// runs against. Players are ordered team A first, then team B, preserving
// the order of the stats payload.
type Match struct {
	MatchID     string
	TeamA       TeamInfo
	TeamB       TeamInfo
	ScoreA      int
	ScoreB      int
	TotalRounds int
	Map         Venue
	Location    Venue
	Region      string
	Winner      string
	Players     []PlayerRecord
}

// HasTeams reports whether both team names are known.
func (m *Match) HasTeams() bool {
	return m.TeamA.Name != "" && m.TeamB.Name != ""
}

// Lifetime holds the career aggregates returned by the player stats endpoint.
type Lifetime struct {
	Values        stats.Map
	RecentResults []string // "1" = win, "0" = loss, most recent first
}

// Lifetime statistic keys.
const (
	LifetimeWinRate    = "Win Rate %"
	LifetimeAvgKD      = "Average K/D Ratio"
	LifetimeAvgHS      = "Average Headshots %"
	LifetimeMatches    = "Matches"
	LifetimeWins       = "Wins"
	LifetimeLongestWin = "Longest Win Streak"
)

// HistoryTeam is one faction in a history entry.
type HistoryTeam struct {
	Nickname  string
	PlayerIDs []string
}

// HistoryMatch is one entry from the player's match history.
type HistoryMatch struct {
	MatchID     string
	Status      string
	GameMode    string
	Competition string
	StartedAt   time.Time
	FinishedAt  time.Time
	Faction1    HistoryTeam
	Faction2    HistoryTeam
	Winner      string         // "faction1" or "faction2"
	Score       map[string]int // keyed by faction
}

// Profile is the identity part of a player lookup.
type Profile struct {
	PlayerID   string
	Nickname   string
	Avatar     string
	Country    string
	CoverImage string
	FaceitURL  string
	Verified   bool
	SkillLevel int
	Elo        int
	Region     string
}

// ProfileSummary is the derived view of a player's lifetime stats and recent history.
type ProfileSummary struct {
	Profile Profile

	HasLifetime bool
	WinRate     float64
	AvgKD       float64
	AvgHS       float64
	Matches     int
	Recent      []bool // true = win, most recent first

	History []HistoryResult
}

// HistoryResult is one history entry resolved from the player's point of view.
type HistoryResult struct {
	MatchID     string
	Competition string
	Win         bool
	Score       string // "us - them"
	Team        string
	FinishedAt  time.Time
}
