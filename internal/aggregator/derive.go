// Package aggregator derives secondary metrics, team reductions and chart
// datasets from per-player match statistics. Everything here is a pure
// function of its inputs.
package aggregator

import (
	"math"

	"github.com/pable/go-faceit-insights/internal/model"
)

// Metric extracts one numeric value from a player record.
type Metric func(p model.PlayerRecord) float64

// CountOf returns a Metric reading key with integer semantics.
func CountOf(key string) Metric {
	return func(p model.PlayerRecord) float64 { return float64(p.Stats.Count(key)) }
}

// RatioOf returns a Metric reading key with decimal semantics.
func RatioOf(key string) Metric {
	return func(p model.PlayerRecord) float64 { return p.Stats.Ratio(key) }
}

// SurvivalRate is the share of rounds the player survived. ok is false when
// totalRounds is not positive.
func SurvivalRate(p model.PlayerRecord, totalRounds int) (rate float64, ok bool) {
	if totalRounds <= 0 {
		return 0, false
	}
	rounds := float64(totalRounds)
	return (rounds - float64(p.Stats.Deaths())) / rounds, true
}

// Impact is kills per round. ok is false when totalRounds is not positive.
func Impact(p model.PlayerRecord, totalRounds int) (kpr float64, ok bool) {
	if totalRounds <= 0 {
		return 0, false
	}
	return float64(p.Stats.Kills()) / float64(totalRounds), true
}

// EntryAggression scores entry-style impact as K/R × (1 − survival).
// It is 0 when survival is undefined.
func EntryAggression(p model.PlayerRecord, totalRounds int) float64 {
	survival, ok := SurvivalRate(p, totalRounds)
	if !ok {
		return 0
	}
	return p.Stats.KRRatio() * (1 - survival)
}

// EntryEfficiency rewards opening duel volume and success jointly:
// entries × (1 + success rate).
func EntryEfficiency(p model.PlayerRecord) float64 {
	return float64(p.Stats.EntryCount()) * (1 + p.Stats.EntrySuccessRate())
}

// FlashEfficiency is enemies flashed per flash thrown across players. The
// denominator is floored at 1.
func FlashEfficiency(players []model.PlayerRecord) float64 {
	var flashed, thrown int
	for _, p := range players {
		flashed += p.Stats.EnemiesFlashed()
		thrown += p.Stats.FlashCount()
	}
	return float64(flashed) / float64(max(1, thrown))
}

// Sum adds metric over players.
func Sum(players []model.PlayerRecord, metric Metric) float64 {
	var total float64
	for _, p := range players {
		total += metric(p)
	}
	return total
}

// Average is the arithmetic mean of metric over players. ok is false for an
// empty slice.
func Average(players []model.PlayerRecord, metric Metric) (avg float64, ok bool) {
	if len(players) == 0 {
		return 0, false
	}
	return Sum(players, metric) / float64(len(players)), true
}

// Truncate2 truncates v toward zero at two decimals. A small epsilon absorbs
// binary representation error so 0.29 stays 0.29.
func Truncate2(v float64) float64 {
	const eps = 1e-9
	if v < 0 {
		return -math.Floor(-v*100+eps) / 100
	}
	return math.Floor(v*100+eps) / 100
}
