package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

func player(id string, kv ...string) model.PlayerRecord {
	m := stats.Map{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return model.PlayerRecord{PlayerID: id, Nickname: "nick_" + id, Stats: m}
}

func labels(badges []Badge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.Label)
	}
	return out
}

// holder returns the player ID holding label, or "".
func holder(res Result, label string) string {
	for _, a := range res.Assignments {
		if a.Badge.Label == label {
			return a.PlayerID
		}
	}
	return ""
}

func evaluate(players ...model.PlayerRecord) Result {
	return NewEngine(Default()).Evaluate(Input{Players: players, TotalRounds: 24})
}

func TestDefaultCatalogue(t *testing.T) {
	c := Default()
	assert.Equal(t, 2, c.Version)
	require.Len(t, c.Rules, 12)
	assert.Equal(t, "The Juggernaut", c.Rules[0].Badge.Label)
	assert.Equal(t, "First Blood", c.Rules[11].Badge.Label)

	c.Rules[0].Badge.Label = "mutated"
	assert.Equal(t, "The Juggernaut", Default().Rules[0].Badge.Label)
}

func TestTopFragger_TieGoesToFirstListed(t *testing.T) {
	res := evaluate(
		player("p1", stats.KeyKills, "20"),
		player("p2", stats.KeyKills, "20"),
		player("p3", stats.KeyKills, "15"),
	)
	assert.Equal(t, "p1", holder(res, "Top Fragger"))
	assert.NotContains(t, labels(res.For("p2")), "Top Fragger")
}

func TestMarksman_NoSniperKills(t *testing.T) {
	res := evaluate(
		player("p1", stats.KeySniperKills, "0"),
		player("p2", stats.KeySniperKills, "0"),
	)
	assert.Empty(t, holder(res, "The Marksman"))
}

func TestBadgesAccumulate(t *testing.T) {
	res := evaluate(
		player("star", stats.KeyKills, "25", stats.KeyHeadshotPct, "60"),
		player("other", stats.KeyKills, "10", stats.KeyHeadshotPct, "40"),
	)
	got := labels(res.For("star"))
	assert.Contains(t, got, "Top Fragger")
	assert.Contains(t, got, "Headhunter")
}

func TestHeadhunter_RequiresTenKills(t *testing.T) {
	res := evaluate(
		player("tapper", stats.KeyKills, "9", stats.KeyHeadshotPct, "90"),
		player("rifler", stats.KeyKills, "20", stats.KeyHeadshotPct, "50"),
	)
	// The top scorer is ineligible; the rule does not fall through to the runner-up.
	assert.Empty(t, holder(res, "Headhunter"))
}

func TestHeadhunter_DecimalPercentTruncated(t *testing.T) {
	res := evaluate(
		player("b", stats.KeyKills, "12", stats.KeyHeadshotPct, "50"),
		player("a", stats.KeyKills, "12", stats.KeyHeadshotPct, "50.9"),
	)
	// 50.9 reads as 50, a tie, so the first listed keeps it.
	assert.Equal(t, "b", holder(res, "Headhunter"))
}

func TestCloserWeights(t *testing.T) {
	res := evaluate(
		player("kills", stats.KeyClutchKills, "4"),
		player("wins", stats.Key1v2Wins, "1", stats.Key1v1Wins, "1"),
	)
	// 4 against 2 + 3.
	assert.Equal(t, "wins", holder(res, "The Closer"))
}

func TestSpearhead_EntryEfficiency(t *testing.T) {
	res := evaluate(
		player("volume", stats.KeyEntryCount, "6", stats.KeyEntrySuccessRate, "0.2"),
		player("clean", stats.KeyEntryCount, "5", stats.KeyEntrySuccessRate, "0.6"),
	)
	assert.Equal(t, "clean", holder(res, "The Spearhead"))
}

func TestEmptyPopulation(t *testing.T) {
	res := evaluate()
	assert.Empty(t, res.Assignments)
	assert.Equal(t, []Badge{}, res.For("anyone"))
}

func TestSinglePlayer(t *testing.T) {
	res := evaluate(player("solo",
		stats.KeyKills, "1",
		stats.KeyKDRatio, "0.5",
	))
	got := labels(res.For("solo"))
	assert.Contains(t, got, "Top Fragger")
	assert.Contains(t, got, "The Juggernaut")
	assert.NotContains(t, got, "The Immortal")
}

func TestAssignmentsInCatalogueOrder(t *testing.T) {
	res := evaluate(
		player("p1",
			stats.KeyKills, "25", stats.KeyKDRatio, "1.4", stats.KeyFirstKills, "5",
			stats.KeyAssists, "2", stats.KeyDamage, "2500", stats.KeyADR, "104.2"),
		player("p2", stats.KeyKills, "10", stats.KeyAssists, "7", stats.KeySniperKills, "3"),
	)

	assert.Equal(t,
		[]string{"The Juggernaut", "Top Fragger", "The Immortal", "Headhunter", "First Blood"},
		labels(res.For("p1")))
	assert.Equal(t, []string{"The Marksman", "The Playmaker"}, labels(res.For("p2")))

	var order []string
	for _, a := range res.Assignments {
		order = append(order, a.Badge.Label)
	}
	assert.Equal(t,
		[]string{"The Juggernaut", "Top Fragger", "The Immortal", "Headhunter", "The Marksman", "The Playmaker", "First Blood"},
		order)
}

func TestEvaluateDeterministic(t *testing.T) {
	players := []model.PlayerRecord{
		player("a", stats.KeyKills, "18", stats.KeyAssists, "5", stats.KeyEnemiesFlashed, "6"),
		player("b", stats.KeyKills, "18", stats.KeyAssists, "5", stats.KeyUtilityDamage, "61"),
	}
	first := evaluate(players...)
	second := evaluate(players...)
	assert.Equal(t, first.Assignments, second.Assignments)
}

func TestEngineCatalogueIsCopied(t *testing.T) {
	c := Default()
	e := NewEngine(c)
	c.Rules[1].Eligible = func(model.PlayerRecord) bool { return false }

	res := e.Evaluate(Input{Players: []model.PlayerRecord{player("p", stats.KeyKills, "1")}})
	assert.Equal(t, "p", holder(res, "Top Fragger"))
}
