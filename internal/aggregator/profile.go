package aggregator

import (
	"fmt"
	"slices"

	"github.com/pable/go-faceit-insights/internal/model"
)

// RecentForm is how many recent results the profile shows.
const RecentForm = 6

const (
	faction1 = "faction1"
	faction2 = "faction2"
)

// SummarizeProfile derives the profile view from a player's lifetime stats
// and match history. lifetime may be nil when the stats request failed; the
// history is capped at limit entries when limit is positive.
func SummarizeProfile(player model.Profile, lifetime *model.Lifetime, history []model.HistoryMatch, limit int) model.ProfileSummary {
	sum := model.ProfileSummary{Profile: player}

	if lifetime != nil {
		v := lifetime.Values
		sum.HasLifetime = true
		sum.WinRate = v.Ratio(model.LifetimeWinRate)
		sum.AvgKD = v.Ratio(model.LifetimeAvgKD)
		sum.AvgHS = v.Ratio(model.LifetimeAvgHS)
		sum.Matches = v.Count(model.LifetimeMatches)
		for i, r := range lifetime.RecentResults {
			if i == RecentForm {
				break
			}
			sum.Recent = append(sum.Recent, r == "1")
		}
	}

	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	for _, m := range history {
		sum.History = append(sum.History, matchResult(player.PlayerID, m))
	}
	return sum
}

// matchResult resolves a history entry from playerID's side. A player found
// in neither roster is treated as faction2.
func matchResult(playerID string, m model.HistoryMatch) model.HistoryResult {
	own, opp, team := faction2, faction1, m.Faction2
	if slices.Contains(m.Faction1.PlayerIDs, playerID) {
		own, opp, team = faction1, faction2, m.Faction1
	}
	return model.HistoryResult{
		MatchID:     m.MatchID,
		Competition: m.Competition,
		Win:         m.Winner == own,
		Score:       fmt.Sprintf("%d - %d", m.Score[own], m.Score[opp]),
		Team:        team.Nickname,
		FinishedAt:  m.FinishedAt,
	}
}
