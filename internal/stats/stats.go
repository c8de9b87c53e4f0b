// Package stats reads the FACEIT statistic maps, whose values are all
// decimal strings under loosely named keys.
package stats

import (
	"math"
	"strconv"
	"strings"
)

// Statistic keys as they appear in FACEIT match stats payloads.
const (
	KeyTeam             = "Team"
	KeyResult           = "Result"
	KeyKills            = "Kills"
	KeyDeaths           = "Deaths"
	KeyAssists          = "Assists"
	KeyHeadshotPct      = "Headshots %"
	KeyKRRatio          = "K/R Ratio"
	KeyKDRatio          = "K/D Ratio"
	KeyDoubleKills      = "Double Kills"
	KeyTripleKills      = "Triple Kills"
	KeyQuadroKills      = "Quadro Kills"
	KeyPentaKills       = "Penta Kills"
	KeyMVPs             = "MVPs"
	KeyADR              = "ADR"
	KeyDamage           = "Damage"
	KeyUtilityDamage    = "Utility Damage"
	KeyFlashCount       = "Flash Count"
	KeyFlashSuccesses   = "Flash Successes"
	KeyEnemiesFlashed   = "Enemies Flashed"
	KeyEntryCount       = "Entry Count"
	KeyEntryWins        = "Entry Wins"
	KeyEntrySuccessRate = "Match Entry Success Rate"
	KeyFirstKills       = "First Kills"
	KeyClutchKills      = "Clutch Kills"
	Key1v1Count         = "1v1Count"
	Key1v1Wins          = "1v1Wins"
	Key1v2Count         = "1v2Count"
	Key1v2Wins          = "1v2Wins"
	KeySniperKills      = "Sniper Kills"
	KeyPistolKills      = "Pistol Kills"
)

// Round and team level keys.
const (
	KeyRounds = "Rounds"
	KeyScore  = "Score"
	KeyMap    = "Map"
	KeyRegion = "Region"
	KeyWinner = "Winner"

	KeyFinalScore      = "Final Score"
	KeyFirstHalfScore  = "First Half Score"
	KeySecondHalfScore = "Second Half Score"
	KeyOvertimeScore   = "Overtime score"
	KeyTeamHeadshots   = "Team Headshots"
	KeyTeamWin         = "Team Win"
)

// Map is an open set of statistics keyed by name. Unknown keys are carried
// through untouched; absent keys read as zero.
type Map map[string]string

// String returns the raw value for key, or "" when absent.
func (m Map) String(key string) string {
	return m[key]
}

// Count parses key as an integer count. Decimal input is truncated toward
// zero. Missing, empty or malformed values yield 0.
func (m Map) Count(key string) int {
	s := strings.TrimSpace(m[key])
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f := parseFloat(s)
	return int(f)
}

// Ratio parses key as a decimal. Missing, empty or malformed values yield 0.
func (m Map) Ratio(key string) float64 {
	return parseFloat(strings.TrimSpace(m[key]))
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// With returns a copy of m with key set to value.
func (m Map) With(key, value string) Map {
	out := make(Map, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = value
	return out
}

func (m Map) Team() string { return m[KeyTeam] }

func (m Map) Kills() int         { return m.Count(KeyKills) }
func (m Map) Deaths() int        { return m.Count(KeyDeaths) }
func (m Map) Assists() int       { return m.Count(KeyAssists) }
func (m Map) HeadshotPct() int   { return m.Count(KeyHeadshotPct) }
func (m Map) KDRatio() float64   { return m.Ratio(KeyKDRatio) }
func (m Map) KRRatio() float64   { return m.Ratio(KeyKRRatio) }
func (m Map) ADR() float64       { return m.Ratio(KeyADR) }
func (m Map) Damage() int        { return m.Count(KeyDamage) }
func (m Map) MVPs() int          { return m.Count(KeyMVPs) }
func (m Map) UtilityDamage() int { return m.Count(KeyUtilityDamage) }

func (m Map) FlashCount() int     { return m.Count(KeyFlashCount) }
func (m Map) FlashSuccesses() int { return m.Count(KeyFlashSuccesses) }
func (m Map) EnemiesFlashed() int { return m.Count(KeyEnemiesFlashed) }

func (m Map) EntryCount() int           { return m.Count(KeyEntryCount) }
func (m Map) EntryWins() int            { return m.Count(KeyEntryWins) }
func (m Map) EntrySuccessRate() float64 { return m.Ratio(KeyEntrySuccessRate) }
func (m Map) FirstKills() int           { return m.Count(KeyFirstKills) }

func (m Map) ClutchKills() int  { return m.Count(KeyClutchKills) }
func (m Map) OneVOneCount() int { return m.Count(Key1v1Count) }
func (m Map) OneVOneWins() int  { return m.Count(Key1v1Wins) }
func (m Map) OneVTwoCount() int { return m.Count(Key1v2Count) }
func (m Map) OneVTwoWins() int  { return m.Count(Key1v2Wins) }

func (m Map) SniperKills() int { return m.Count(KeySniperKills) }
func (m Map) PistolKills() int { return m.Count(KeyPistolKills) }

func (m Map) DoubleKills() int { return m.Count(KeyDoubleKills) }
func (m Map) TripleKills() int { return m.Count(KeyTripleKills) }
func (m Map) QuadroKills() int { return m.Count(KeyQuadroKills) }
func (m Map) PentaKills() int  { return m.Count(KeyPentaKills) }
