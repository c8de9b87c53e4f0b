package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-faceit-insights/internal/aggregator"
	"github.com/pable/go-faceit-insights/internal/faceit"
	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

func record(id, team string, kv ...string) model.PlayerRecord {
	s := stats.Map{stats.KeyTeam: team}
	for i := 0; i+1 < len(kv); i += 2 {
		s[kv[i]] = kv[i+1]
	}
	return model.PlayerRecord{PlayerID: id, Nickname: id, Stats: s}
}

func TestLooksLikeIDs(t *testing.T) {
	assert.True(t, looksLikeSteamID("76561198000000000"))
	assert.False(t, looksLikeSteamID("s1mple"))
	assert.False(t, looksLikeSteamID("12345"))

	assert.True(t, looksLikePlayerID("ac71ba3c-d3d4-45e7-8be2-26aa3986867d"))
	assert.False(t, looksLikePlayerID("ac71ba3cd3d445e78be226aa3986867d"))
	assert.False(t, looksLikePlayerID("s1mple"))
}

func TestDeriveReport_SplitsTeams(t *testing.T) {
	m := model.Match{
		TeamA:       model.TeamInfo{Name: "alpha"},
		TeamB:       model.TeamInfo{Name: "bravo"},
		TotalRounds: 20,
		Players: []model.PlayerRecord{
			record("a1", "alpha", stats.KeyKills, "20"),
			record("b1", "bravo", stats.KeyKills, "10"),
			record("x1", model.UnknownTeam, stats.KeyKills, "30"),
		},
	}
	rep := deriveReport(m)
	require.Len(t, rep.Rosters, 2)
	assert.Equal(t, 1, rep.Rosters[0].Len())
	assert.Equal(t, 1, rep.Rosters[1].Len())

	// The unresolved player still takes a global badge.
	var labels []string
	for _, b := range rep.Badges.For("x1") {
		labels = append(labels, b.Label)
	}
	assert.Contains(t, labels, "Top Fragger")
}

func TestDeriveReport_SingleListWithoutTeams(t *testing.T) {
	m := model.Match{Players: []model.PlayerRecord{record("a1", "alpha"), record("b1", "bravo")}}
	rep := deriveReport(m)
	require.Len(t, rep.Rosters, 1)
	assert.Equal(t, aggregator.AllPlayers, rep.Rosters[0].Name)
	assert.Equal(t, 2, rep.Rosters[0].Len())
}

func TestBuildMatchContext(t *testing.T) {
	m := model.Match{
		MatchID:     "1-abc",
		TeamA:       model.TeamInfo{Name: "alpha"},
		TeamB:       model.TeamInfo{Name: "bravo"},
		ScoreA:      13,
		ScoreB:      7,
		TotalRounds: 20,
		Players: []model.PlayerRecord{
			record("a1", "alpha", stats.KeyKills, "20", stats.KeyDeaths, "10", stats.KeyKRRatio, "1.0"),
			record("b1", "bravo", stats.KeyKills, "10", stats.KeyDeaths, "15"),
		},
	}
	out, err := buildMatchContext(deriveReport(m))
	require.NoError(t, err)

	var doc struct {
		Score   string          `json:"score"`
		Players []analyzePlayer `json:"players"`
		Teams   []analyzeTeam   `json:"teams"`
	}
	require.NoError(t, sonic.UnmarshalString(out, &doc))
	assert.Equal(t, "13-7", doc.Score)
	require.Len(t, doc.Players, 2)
	require.NotNil(t, doc.Players[0].Survival)
	assert.InDelta(t, 0.5, *doc.Players[0].Survival, 1e-9)
	assert.InDelta(t, 0.5, doc.Players[0].EntryAggression, 1e-9)
	assert.Contains(t, doc.Players[0].Badges, "Top Fragger")
	require.Len(t, doc.Teams, 2)
	assert.Equal(t, 13, doc.Teams[0].Score)
	assert.NotNil(t, doc.Teams[0].Profile)
}

func TestResolvePlayer(t *testing.T) {
	const id = "ac71ba3c-d3d4-45e7-8be2-26aa3986867d"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.RequestURI() {
		case "/players?nickname=s1mple":
			_, _ = w.Write([]byte(`{"player_id":"p-nick","nickname":"s1mple"}`))
		case "/players?game=cs2&game_player_id=76561198000000000":
			_, _ = w.Write([]byte(`{"player_id":"p-steam"}`))
		case "/players/" + id:
			_, _ = w.Write([]byte(`{"player_id":"` + id + `"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	c := faceit.NewClient("k", faceit.WithBaseURL(srv.URL))
	ctx := context.Background()

	p, err := resolvePlayer(ctx, c, "s1mple")
	require.NoError(t, err)
	assert.Equal(t, "p-nick", p.PlayerID)

	p, err = resolvePlayer(ctx, c, "76561198000000000")
	require.NoError(t, err)
	assert.Equal(t, "p-steam", p.PlayerID)

	p, err = resolvePlayer(ctx, c, id)
	require.NoError(t, err)
	assert.Equal(t, id, p.PlayerID)

	_, err = resolvePlayer(ctx, c, "nobody")
	assert.ErrorIs(t, err, faceit.ErrNotFound)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown("# Verdict\n\nalpha won the **entry** battle")
	require.NoError(t, err)
	assert.Contains(t, out, "Verdict")
	assert.Contains(t, out, "entry")
}
