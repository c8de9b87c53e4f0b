// Package badge awards superlative titles to the players of one match.
//
// A Catalogue is a fixed, versioned list of rules. Each rule scores every
// player, the single top scorer wins (ties go to the player listed first),
// and the win only counts if that player passes the rule's eligibility
// check. Rules are independent: one player may collect many badges.
package badge

import "github.com/pable/go-faceit-insights/internal/model"

// Category groups badges for display.
type Category string

const (
	Combat    Category = "combat"
	Precision Category = "precision"
	Tactics   Category = "tactics"
	Clutch    Category = "clutch"
)

// Badge is the display metadata of one title.
type Badge struct {
	Label       string
	Icon        string
	Color       string
	Description string
	Category    Category
}

// Scorer ranks a player for one rule. Higher is better.
type Scorer func(p model.PlayerRecord, totalRounds int) float64

// Predicate gates the winner of a rule on their absolute stats.
type Predicate func(p model.PlayerRecord) bool

// Rule pairs a badge with how to pick its holder. A nil Eligible accepts
// any winner.
type Rule struct {
	Badge    Badge
	Score    Scorer
	Eligible Predicate
}

// Catalogue is an ordered rule set.
type Catalogue struct {
	Version int
	Rules   []Rule
}

// Input is the population a catalogue is evaluated against.
type Input struct {
	Players     []model.PlayerRecord
	TotalRounds int
}

// Assignment records one badge won by one player.
type Assignment struct {
	Badge    Badge
	PlayerID string
	Nickname string
	Score    float64
}

// Result holds the assignments of one evaluation, in catalogue order.
type Result struct {
	Assignments []Assignment
	byPlayer    map[string][]Badge
}

// For returns the badges won by playerID in catalogue order. The slice is
// empty, never nil, for a player without badges.
func (r Result) For(playerID string) []Badge {
	if b, ok := r.byPlayer[playerID]; ok {
		return b
	}
	return []Badge{}
}

// Engine evaluates a catalogue. It holds no per-request state and is safe
// for concurrent use.
type Engine struct {
	catalogue Catalogue
}

// NewEngine returns an engine over c.
func NewEngine(c Catalogue) *Engine {
	rules := make([]Rule, len(c.Rules))
	copy(rules, c.Rules)
	return &Engine{catalogue: Catalogue{Version: c.Version, Rules: rules}}
}

// Catalogue returns a copy of the engine's rule set.
func (e *Engine) Catalogue() Catalogue {
	rules := make([]Rule, len(e.catalogue.Rules))
	copy(rules, e.catalogue.Rules)
	return Catalogue{Version: e.catalogue.Version, Rules: rules}
}

// Evaluate runs every rule against in.Players.
func (e *Engine) Evaluate(in Input) Result {
	res := Result{byPlayer: make(map[string][]Badge)}
	if len(in.Players) == 0 {
		return res
	}
	for _, rule := range e.catalogue.Rules {
		winner, score := top(in.Players, in.TotalRounds, rule.Score)
		p := in.Players[winner]
		if rule.Eligible != nil && !rule.Eligible(p) {
			continue
		}
		res.Assignments = append(res.Assignments, Assignment{
			Badge:    rule.Badge,
			PlayerID: p.PlayerID,
			Nickname: p.Nickname,
			Score:    score,
		})
		res.byPlayer[p.PlayerID] = append(res.byPlayer[p.PlayerID], rule.Badge)
	}
	return res
}

// top returns the index of the first player holding the maximal score.
func top(players []model.PlayerRecord, totalRounds int, score Scorer) (int, float64) {
	best, bestScore := 0, score(players[0], totalRounds)
	for i := 1; i < len(players); i++ {
		if s := score(players[i], totalRounds); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore
}
