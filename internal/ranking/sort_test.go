package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

func withKills(id, kills string) model.PlayerRecord {
	return model.PlayerRecord{PlayerID: id, Nickname: id, Stats: stats.Map{stats.KeyKills: kills}}
}

func ids(players []model.PlayerRecord) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.PlayerID)
	}
	return out
}

func TestSort_StableDescending(t *testing.T) {
	in := []model.PlayerRecord{
		withKills("a", "10"),
		withKills("b", "30"),
		withKills("c", "20"),
		withKills("d", "30"),
		withKills("e", "5"),
	}

	got := Sort(in, Kills, Desc)
	assert.Equal(t, []string{"b", "d", "c", "a", "e"}, ids(got))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(in), "input must not be reordered")
}

func TestSort_StableAscending(t *testing.T) {
	in := []model.PlayerRecord{
		withKills("a", "10"),
		withKills("b", "30"),
		withKills("c", "10"),
	}
	assert.Equal(t, []string{"a", "c", "b"}, ids(Sort(in, Kills, Asc)))
}

func TestSort_NicknameIgnoresCase(t *testing.T) {
	in := []model.PlayerRecord{
		{PlayerID: "1", Nickname: "zeta"},
		{PlayerID: "2", Nickname: "Alpha"},
		{PlayerID: "3", Nickname: "beta"},
	}
	assert.Equal(t, []string{"2", "3", "1"}, ids(Sort(in, Nickname, Asc)))
	assert.Equal(t, []string{"1", "3", "2"}, ids(Sort(in, Nickname, Desc)))
}

func TestSort_NumericKeysUseCoercion(t *testing.T) {
	in := []model.PlayerRecord{
		{PlayerID: "junk", Stats: stats.Map{stats.KeyKDRatio: "n/a", stats.KeyHeadshotPct: "x"}},
		{PlayerID: "high", Stats: stats.Map{stats.KeyKDRatio: "1.75", stats.KeyHeadshotPct: "61.9"}},
		{PlayerID: "low", Stats: stats.Map{stats.KeyKDRatio: "0.8", stats.KeyHeadshotPct: "61"}},
	}
	assert.Equal(t, []string{"high", "low", "junk"}, ids(Sort(in, KD, Desc)))
	// 61.9 and 61 both read as 61 and keep input order.
	assert.Equal(t, []string{"high", "low", "junk"}, ids(Sort(in, HS, Desc)))
}

func TestSort_Empty(t *testing.T) {
	assert.Empty(t, Sort(nil, ADR, Desc))
}

func TestParseKey(t *testing.T) {
	for _, k := range Keys {
		got, err := ParseKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKey(" ADR ")
	require.NoError(t, err)
	assert.Equal(t, ADR, got)

	_, err = ParseKey("elo")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("ASC")
	require.NoError(t, err)
	assert.Equal(t, Asc, d)

	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}
