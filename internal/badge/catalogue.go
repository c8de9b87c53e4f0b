package badge

import (
	"github.com/pable/go-faceit-insights/internal/aggregator"
	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

// Version of the catalogue returned by Default.
const Version = 2

// Default returns the canonical catalogue: twelve rules across four
// categories. Each call returns a fresh copy.
func Default() Catalogue {
	return Catalogue{Version: Version, Rules: []Rule{
		{
			Badge: Badge{
				Label:       "The Juggernaut",
				Icon:        "skull",
				Color:       "red",
				Description: "The most destructive force in the server. Deals massive damage",
				Category:    Combat,
			},
			Score: func(p model.PlayerRecord, _ int) float64 {
				return float64(p.Stats.Damage()) + p.Stats.ADR()*100
			},
		},
		{
			Badge: Badge{
				Label:       "Top Fragger",
				Icon:        "flame",
				Color:       "orange",
				Description: "The primary carry of the team. Eliminates the most enemies",
				Category:    Combat,
			},
			Score: count(stats.KeyKills),
		},
		{
			Badge: Badge{
				Label:       "The Immortal",
				Icon:        "ghost",
				Color:       "purple",
				Description: "An elusive target. Extremely efficient and hard to trade",
				Category:    Combat,
			},
			Score:    ratio(stats.KeyKDRatio),
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.KDRatio() > 1.0 },
		},
		{
			Badge: Badge{
				Label:       "The Finisher",
				Icon:        "target",
				Color:       "rose",
				Description: "Cleans up rounds and ensures damaged enemies do not survive",
				Category:    Combat,
			},
			Score:    ratio(stats.KeyKRRatio),
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.KRRatio() > 0.6 },
		},
		{
			Badge: Badge{
				Label:       "Headhunter",
				Icon:        "crosshair",
				Color:       "orange",
				Description: "Clinical precision. Eliminates opponents instantly with accurate crosshair placement",
				Category:    Precision,
			},
			Score:    count(stats.KeyHeadshotPct),
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.Kills() >= 10 },
		},
		{
			Badge: Badge{
				Label:       "The Marksman",
				Icon:        "locate",
				Color:       "green",
				Description: "Controls long angles and locks down lanes with the Big Green Gun",
				Category:    Precision,
			},
			Score:    count(stats.KeySniperKills),
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.SniperKills() > 0 },
		},
		{
			Badge: Badge{
				Label:       "Gunslinger",
				Icon:        "dollar",
				Color:       "emerald",
				Description: "Deadly on eco rounds. Turns disadvantageous fights into wins",
				Category:    Precision,
			},
			Score:    count(stats.KeyPistolKills),
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.PistolKills() > 2 },
		},
		{
			Badge: Badge{
				Label:       "The Spearhead",
				Icon:        "swords",
				Color:       "red",
				Description: "The fearless Entry Fragger. Takes the first duel to open the bombsite",
				Category:    Tactics,
			},
			Score:    func(p model.PlayerRecord, _ int) float64 { return aggregator.EntryEfficiency(p) },
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.EntryCount() > 0 },
		},
		{
			Badge: Badge{
				Label:       "The Tactician",
				Icon:        "bomb",
				Color:       "indigo",
				Description: "Uses utility effectively to blind opponents and set up teammates for success",
				Category:    Tactics,
			},
			Score: func(p model.PlayerRecord, _ int) float64 {
				return float64(p.Stats.EnemiesFlashed()*10 + p.Stats.UtilityDamage())
			},
			Eligible: func(p model.PlayerRecord) bool {
				return p.Stats.EnemiesFlashed() > 3 || p.Stats.UtilityDamage() > 30
			},
		},
		{
			Badge: Badge{
				Label:       "The Playmaker",
				Icon:        "zap",
				Color:       "yellow",
				Description: "The ultimate support player. Damage or utility that leads to teammate kills",
				Category:    Tactics,
			},
			Score:    count(stats.KeyAssists),
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.Assists() > 3 },
		},
		{
			Badge: Badge{
				Label:       "The Closer",
				Icon:        "crown",
				Color:       "amber",
				Description: "Ice in their veins. Wins the round when left alone against multiple opponents",
				Category:    Clutch,
			},
			Score: func(p model.PlayerRecord, _ int) float64 {
				s := p.Stats
				return float64(s.ClutchKills() + 2*s.OneVOneWins() + 3*s.OneVTwoWins())
			},
			Eligible: func(p model.PlayerRecord) bool {
				return p.Stats.ClutchKills() > 0 || p.Stats.OneVOneWins() > 0
			},
		},
		{
			Badge: Badge{
				Label:       "First Blood",
				Icon:        "award",
				Color:       "red",
				Description: "Consistently secures the opening kill, giving the team an immediate 5v4 advantage",
				Category:    Clutch,
			},
			Score:    count(stats.KeyFirstKills),
			Eligible: func(p model.PlayerRecord) bool { return p.Stats.FirstKills() > 0 },
		},
	}}
}

func count(key string) Scorer {
	return func(p model.PlayerRecord, _ int) float64 { return float64(p.Stats.Count(key)) }
}

func ratio(key string) Scorer {
	return func(p model.PlayerRecord, _ int) float64 { return p.Stats.Ratio(key) }
}
