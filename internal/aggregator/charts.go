package aggregator

import (
	"slices"

	"github.com/pable/go-faceit-insights/internal/model"
)

// Quadrant labels for the impact matrix.
const (
	QuadrantMVP        = "MVP"
	QuadrantAggressive = "Aggressive"
	QuadrantPassive    = "Passive"
	QuadrantStruggling = "Struggling"
)

// ImpactPoint places a player by survival rate (X) and kills per round (Y).
type ImpactPoint struct {
	Nickname string
	Survival float64
	Impact   float64
	KD       float64
	Quadrant string
}

// ImpactMatrix plots survival against impact for every player. Quadrants are
// split at the midpoint of the observed X and Y ranges. Returns nil when
// totalRounds is not positive.
func ImpactMatrix(players []model.PlayerRecord, totalRounds int) []ImpactPoint {
	if totalRounds <= 0 || len(players) == 0 {
		return nil
	}
	points := make([]ImpactPoint, 0, len(players))
	for _, p := range players {
		survival, _ := SurvivalRate(p, totalRounds)
		impact, _ := Impact(p, totalRounds)
		points = append(points, ImpactPoint{
			Nickname: p.Nickname,
			Survival: Truncate2(survival),
			Impact:   Truncate2(impact),
			KD:       p.Stats.KDRatio(),
		})
	}

	minX, maxX := points[0].Survival, points[0].Survival
	minY, maxY := points[0].Impact, points[0].Impact
	for _, pt := range points[1:] {
		minX, maxX = min(minX, pt.Survival), max(maxX, pt.Survival)
		minY, maxY = min(minY, pt.Impact), max(maxY, pt.Impact)
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	for i := range points {
		highX := points[i].Survival >= midX
		highY := points[i].Impact >= midY
		switch {
		case highX && highY:
			points[i].Quadrant = QuadrantMVP
		case highY:
			points[i].Quadrant = QuadrantAggressive
		case highX:
			points[i].Quadrant = QuadrantPassive
		default:
			points[i].Quadrant = QuadrantStruggling
		}
	}
	return points
}

// ScatterPoint is a player's K/D against ADR.
type ScatterPoint struct {
	Nickname string
	KD       float64
	ADR      float64
}

// KDvsADR returns one point per player in input order.
func KDvsADR(players []model.PlayerRecord) []ScatterPoint {
	out := make([]ScatterPoint, 0, len(players))
	for _, p := range players {
		out = append(out, ScatterPoint{Nickname: p.Nickname, KD: p.Stats.KDRatio(), ADR: p.Stats.ADR()})
	}
	return out
}

// EntryPoint describes a player's opening duels.
type EntryPoint struct {
	Nickname   string
	Entries    int
	SuccessPct float64
	FirstKills int
	Radius     int
}

// EntryDuels lists players who took at least one opening duel.
func EntryDuels(players []model.PlayerRecord) []EntryPoint {
	var out []EntryPoint
	for _, p := range players {
		if p.Stats.EntryCount() <= 0 {
			continue
		}
		fk := p.Stats.FirstKills()
		out = append(out, EntryPoint{
			Nickname:   p.Nickname,
			Entries:    p.Stats.EntryCount(),
			SuccessPct: p.Stats.EntrySuccessRate() * 100,
			FirstKills: fk,
			Radius:     max(5, fk*2),
		})
	}
	return out
}

// UtilityRow is one player's utility output.
type UtilityRow struct {
	Nickname       string
	UtilityDamage  int
	EnemiesFlashed int
	FlashCount     int
}

// UtilityUsage orders players by utility damage, highest first.
func UtilityUsage(players []model.PlayerRecord) []UtilityRow {
	out := make([]UtilityRow, 0, len(players))
	for _, p := range players {
		out = append(out, UtilityRow{
			Nickname:       p.Nickname,
			UtilityDamage:  p.Stats.UtilityDamage(),
			EnemiesFlashed: p.Stats.EnemiesFlashed(),
			FlashCount:     p.Stats.FlashCount(),
		})
	}
	slices.SortStableFunc(out, func(a, b UtilityRow) int { return b.UtilityDamage - a.UtilityDamage })
	return out
}

// KillSplit breaks a player's kills down by weapon class.
type KillSplit struct {
	Nickname string
	Kills    int
	Sniper   int
	Pistol   int
	Other    int
}

// KillDistribution orders players by kills, highest first.
func KillDistribution(players []model.PlayerRecord) []KillSplit {
	out := make([]KillSplit, 0, len(players))
	for _, p := range players {
		k, s, ps := p.Stats.Kills(), p.Stats.SniperKills(), p.Stats.PistolKills()
		out = append(out, KillSplit{
			Nickname: p.Nickname,
			Kills:    k,
			Sniper:   s,
			Pistol:   ps,
			Other:    max(0, k-s-ps),
		})
	}
	slices.SortStableFunc(out, func(a, b KillSplit) int { return b.Kills - a.Kills })
	return out
}

// MultikillRow counts a player's multi-kill rounds.
type MultikillRow struct {
	Nickname string
	Kills    int
	Double   int
	Triple   int
	Quadro   int
	Penta    int
}

// Total is the number of multi-kill rounds.
func (r MultikillRow) Total() int { return r.Double + r.Triple + r.Quadro + r.Penta }

// Multikills lists players with at least one multi-kill round, highest kills first.
func Multikills(players []model.PlayerRecord) []MultikillRow {
	var out []MultikillRow
	for _, p := range players {
		row := MultikillRow{
			Nickname: p.Nickname,
			Kills:    p.Stats.Kills(),
			Double:   p.Stats.DoubleKills(),
			Triple:   p.Stats.TripleKills(),
			Quadro:   p.Stats.QuadroKills(),
			Penta:    p.Stats.PentaKills(),
		}
		if row.Total() > 0 {
			out = append(out, row)
		}
	}
	slices.SortStableFunc(out, func(a, b MultikillRow) int { return b.Kills - a.Kills })
	return out
}

// ClutchRow summarizes a player's 1vX situations.
type ClutchRow struct {
	Nickname    string
	Attempts    int
	Wins        int
	OneVOne     int
	OneVOneWins int
	OneVTwo     int
	OneVTwoWins int
	ClutchKills int
}

func clutchRow(p model.PlayerRecord) ClutchRow {
	s := p.Stats
	return ClutchRow{
		Nickname:    p.Nickname,
		Attempts:    s.OneVOneCount() + s.OneVTwoCount(),
		Wins:        s.OneVOneWins() + s.OneVTwoWins(),
		OneVOne:     s.OneVOneCount(),
		OneVOneWins: s.OneVOneWins(),
		OneVTwo:     s.OneVTwoCount(),
		OneVTwoWins: s.OneVTwoWins(),
		ClutchKills: s.ClutchKills(),
	}
}

// ClutchAttempts lists players who faced at least one 1v1 or 1v2, most wins first.
func ClutchAttempts(players []model.PlayerRecord) []ClutchRow {
	var out []ClutchRow
	for _, p := range players {
		if row := clutchRow(p); row.Attempts > 0 {
			out = append(out, row)
		}
	}
	slices.SortStableFunc(out, func(a, b ClutchRow) int { return b.Wins - a.Wins })
	return out
}

// ClutchLeaders lists players with any clutch win or clutch kill, most clutch
// kills first, capped at limit. A non-positive limit means no cap.
func ClutchLeaders(players []model.PlayerRecord, limit int) []ClutchRow {
	var out []ClutchRow
	for _, p := range players {
		if row := clutchRow(p); row.Wins > 0 || row.ClutchKills > 0 {
			out = append(out, row)
		}
	}
	slices.SortStableFunc(out, func(a, b ClutchRow) int { return b.ClutchKills - a.ClutchKills })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LevelBar pairs a player's skill level with their K/D.
type LevelBar struct {
	Nickname   string
	SkillLevel int
	KD         float64
}

// LevelVsKD orders players by skill level, lowest first.
func LevelVsKD(players []model.PlayerRecord) []LevelBar {
	out := make([]LevelBar, 0, len(players))
	for _, p := range players {
		out = append(out, LevelBar{Nickname: p.Nickname, SkillLevel: p.SkillLevel, KD: p.Stats.KDRatio()})
	}
	slices.SortStableFunc(out, func(a, b LevelBar) int { return a.SkillLevel - b.SkillLevel })
	return out
}
