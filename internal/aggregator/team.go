package aggregator

import (
	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

// AllPlayers labels the roster produced by SingleList when no team split
// is available.
const AllPlayers = "All Players"

// Roster is the ordered set of players resolved to one team.
type Roster struct {
	Name    string
	Players []model.PlayerRecord
}

// Len returns the number of players on the roster.
func (r Roster) Len() int { return len(r.Players) }

// Sum adds metric over the roster.
func (r Roster) Sum(metric Metric) float64 { return Sum(r.Players, metric) }

// Average is the mean of metric over the roster; ok is false when empty.
func (r Roster) Average(metric Metric) (float64, bool) { return Average(r.Players, metric) }

// FlashEfficiency is the roster's enemies flashed per flash thrown.
func (r Roster) FlashEfficiency() float64 { return FlashEfficiency(r.Players) }

// Partition splits players into the two named teams by exact match on their
// recorded team. Input order is kept; players matching neither name are
// dropped.
func Partition(players []model.PlayerRecord, teamA, teamB string) (Roster, Roster) {
	a := Roster{Name: teamA}
	b := Roster{Name: teamB}
	for _, p := range players {
		switch p.Team() {
		case teamA:
			a.Players = append(a.Players, p)
		case teamB:
			b.Players = append(b.Players, p)
		}
	}
	return a, b
}

// SingleList wraps every player in one roster, for views without team data.
func SingleList(players []model.PlayerRecord, name string) Roster {
	if name == "" {
		name = AllPlayers
	}
	out := make([]model.PlayerRecord, len(players))
	copy(out, players)
	return Roster{Name: name, Players: out}
}

// ComparisonRow is one side-by-side team total.
type ComparisonRow struct {
	Label  string
	A, B   float64
	ShareA float64 // percent of A+B
	ShareB float64
}

// comparedStats lists the totals shown in the team comparison, in display order.
var comparedStats = []struct {
	label string
	key   string
}{
	{"Total Kills", stats.KeyKills},
	{"Total Deaths", stats.KeyDeaths},
	{"Total Assists", stats.KeyAssists},
	{"First Kills", stats.KeyFirstKills},
	{"Clutch Kills", stats.KeyClutchKills},
	{"Utility Damage", stats.KeyUtilityDamage},
	{"Sniper Kills", stats.KeySniperKills},
}

// CompareTeams totals the comparison stats for both rosters. When a stat is
// zero on both sides the split is reported as 50/50.
func CompareTeams(a, b Roster) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(comparedStats))
	for _, s := range comparedStats {
		metric := CountOf(s.key)
		row := ComparisonRow{Label: s.label, A: a.Sum(metric), B: b.Sum(metric)}
		total := row.A + row.B
		if total == 0 {
			row.ShareA, row.ShareB = 50, 50
		} else {
			row.ShareA = row.A / total * 100
			row.ShareB = row.B / total * 100
		}
		rows = append(rows, row)
	}
	return rows
}

// RadarProfile is a team's averaged profile for radar-style comparison.
// Rates are scaled to percent; K/D is scaled by 100 to share the axis.
type RadarProfile struct {
	ADR           float64
	HeadshotPct   float64
	EntrySuccess  float64
	UtilityDamage float64
	FlashEfficacy float64
	KDx100        float64
}

// TeamProfile builds the radar profile for r. ok is false for an empty roster.
func TeamProfile(r Roster) (RadarProfile, bool) {
	if r.Len() == 0 {
		return RadarProfile{}, false
	}
	adr, _ := r.Average(RatioOf(stats.KeyADR))
	hs, _ := r.Average(CountOf(stats.KeyHeadshotPct))
	entry, _ := r.Average(RatioOf(stats.KeyEntrySuccessRate))
	util, _ := r.Average(CountOf(stats.KeyUtilityDamage))
	kd, _ := r.Average(RatioOf(stats.KeyKDRatio))
	return RadarProfile{
		ADR:           adr,
		HeadshotPct:   hs,
		EntrySuccess:  entry * 100,
		UtilityDamage: util,
		FlashEfficacy: r.FlashEfficiency() * 100,
		KDx100:        kd * 100,
	}, true
}
