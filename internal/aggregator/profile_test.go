package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

func TestSummarizeProfile(t *testing.T) {
	player := model.Profile{PlayerID: "me", Nickname: "me_nick"}
	lifetime := &model.Lifetime{
		Values: stats.Map{
			model.LifetimeWinRate: "54",
			model.LifetimeAvgKD:   "1.12",
			model.LifetimeAvgHS:   "47",
			model.LifetimeMatches: "812",
		},
		RecentResults: []string{"1", "0", "1", "1", "0", "1", "1", "0"},
	}
	history := []model.HistoryMatch{
		{
			MatchID:  "m1",
			Faction1: model.HistoryTeam{Nickname: "team_me", PlayerIDs: []string{"x", "me"}},
			Faction2: model.HistoryTeam{Nickname: "team_them", PlayerIDs: []string{"y"}},
			Winner:   "faction1",
			Score:    map[string]int{"faction1": 13, "faction2": 9},
		},
		{
			MatchID:  "m2",
			Faction1: model.HistoryTeam{Nickname: "team_them", PlayerIDs: []string{"y"}},
			Faction2: model.HistoryTeam{Nickname: "team_me", PlayerIDs: []string{"me"}},
			Winner:   "faction1",
			Score:    map[string]int{"faction1": 13, "faction2": 11},
		},
		{MatchID: "m3"},
	}

	sum := SummarizeProfile(player, lifetime, history, 2)

	require.True(t, sum.HasLifetime)
	assert.InDelta(t, 54.0, sum.WinRate, 1e-9)
	assert.InDelta(t, 1.12, sum.AvgKD, 1e-9)
	assert.InDelta(t, 47.0, sum.AvgHS, 1e-9)
	assert.Equal(t, 812, sum.Matches)
	assert.Equal(t, []bool{true, false, true, true, false, true}, sum.Recent)

	require.Len(t, sum.History, 2)
	assert.True(t, sum.History[0].Win)
	assert.Equal(t, "13 - 9", sum.History[0].Score)
	assert.Equal(t, "team_me", sum.History[0].Team)

	assert.False(t, sum.History[1].Win)
	assert.Equal(t, "11 - 13", sum.History[1].Score)
	assert.Equal(t, "team_me", sum.History[1].Team)
}

func TestSummarizeProfile_NoLifetime(t *testing.T) {
	sum := SummarizeProfile(model.Profile{PlayerID: "me"}, nil, nil, 15)
	assert.False(t, sum.HasLifetime)
	assert.Empty(t, sum.Recent)
	assert.Empty(t, sum.History)
}
