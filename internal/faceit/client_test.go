package faceit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-faceit-insights/internal/storage"
)

const statsBody = `{
  "rounds": [{
    "match_id": "1-abc",
    "round_stats": {"Map": "de_mirage", "Rounds": "22", "Score": "13 / 9", "Region": "EU", "Winner": "t1"},
    "teams": [
      {"team_id": "t1", "team_stats": {"Team": "team_alpha", "Final Score": "13"},
       "players": [{"player_id": "p1", "nickname": "alpha1", "player_stats": {"Kills": "21", "K/D Ratio": "1.5"}}]},
      {"team_id": "t2", "team_stats": {"Team": "team_bravo", "Final Score": "9"},
       "players": [{"player_id": "p2", "nickname": "bravo1", "player_stats": {"Kills": "12"}}]}
    ]
  }]
}`

// newTestServer serves fixed bodies by request URI and counts hits.
func newTestServer(t *testing.T, routes map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.RequestURI()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestGetMatchStats(t *testing.T) {
	srv, _ := newTestServer(t, map[string]string{"/matches/1-abc/stats": statsBody})
	c := NewClient("test-key", WithBaseURL(srv.URL))

	ms, err := c.GetMatchStats(context.Background(), "1-abc")
	require.NoError(t, err)
	require.Len(t, ms.Rounds, 1)
	assert.Equal(t, "22", ms.Rounds[0].RoundStats["Rounds"])
	assert.Equal(t, "21", ms.Rounds[0].Teams[0].Players[0].PlayerStats["Kills"])
}

func TestNotFound(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	c := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := c.GetMatch(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOtherStatusIncludesCode(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	c := NewClient("wrong-key", WithBaseURL(srv.URL))

	_, err := c.GetPlayer(context.Background(), "p1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestMatchPayloadServedFromCache(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv, hits := newTestServer(t, map[string]string{"/matches/1-abc/stats": statsBody})
	c := NewClient("test-key", WithBaseURL(srv.URL), WithCache(db))
	ctx := context.Background()

	_, err = c.GetMatchStats(ctx, "1-abc")
	require.NoError(t, err)
	second, err := c.GetMatchStats(ctx, "1-abc")
	require.NoError(t, err)

	assert.EqualValues(t, 1, hits.Load(), "second read must not reach the server")
	assert.Equal(t, "team_alpha", second.Rounds[0].Teams[0].TeamStats["Team"])
}

func TestPlayerEndpointsBypassCache(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv, hits := newTestServer(t, map[string]string{
		"/players?nickname=s1mple": `{"player_id":"p1","nickname":"s1mple","games":{"cs2":{"skill_level":10,"faceit_elo":3100}}}`,
	})
	c := NewClient("test-key", WithBaseURL(srv.URL), WithCache(db))
	ctx := context.Background()

	for range 2 {
		p, err := c.GetPlayerByNickname(ctx, "s1mple")
		require.NoError(t, err)
		assert.Equal(t, 10, p.Games["cs2"].SkillLevel)
	}
	assert.EqualValues(t, 2, hits.Load())

	list, err := db.ListPayloads(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHistoryAndLifetime(t *testing.T) {
	srv, _ := newTestServer(t, map[string]string{
		"/players/p1/history?game=cs2&offset=0&limit=15": `{"items":[{"match_id":"m1","competition_name":"5v5 RANKED","finished_at":1700000000,
			"teams":{"faction1":{"nickname":"team_p1","players":[{"player_id":"p1"}]},"faction2":{"nickname":"team_x","players":[{"player_id":"x"}]}},
			"results":{"winner":"faction1","score":{"faction1":13,"faction2":7}}}]}`,
		"/players/p1/stats/cs2": `{"player_id":"p1","lifetime":{"Win Rate %":"55","Average K/D Ratio":"1.1","Matches":"900","Recent Results":["1","0","1"]}}`,
	})
	c := NewClient("test-key", WithBaseURL(srv.URL))
	ctx := context.Background()

	items, err := c.GetMatchHistory(ctx, "p1", "cs2", 0, 15)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 13, items[0].Results.Score["faction1"])

	ps, err := c.GetPlayerStats(ctx, "p1", "cs2")
	require.NoError(t, err)
	lt := BuildLifetime(ps)
	assert.Equal(t, "55", lt.Values["Win Rate %"])
	assert.Equal(t, []string{"1", "0", "1"}, lt.RecentResults)
}
