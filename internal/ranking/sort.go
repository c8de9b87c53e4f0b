// Package ranking orders a match's players by a chosen column.
package ranking

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pable/go-faceit-insights/internal/model"
)

// Key names a sortable column.
type Key string

const (
	Nickname Key = "nickname"
	KD       Key = "kd"
	Kills    Key = "kills"
	Deaths   Key = "deaths"
	ADR      Key = "adr"
	HS       Key = "hs"
	Damage   Key = "damage"
	Assists  Key = "assists"
)

// Keys lists every sortable column in display order.
var Keys = []Key{Nickname, KD, Kills, Deaths, ADR, HS, Damage, Assists}

// ParseKey validates a column name.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Keys, k) {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want one of %v)", s, Keys)
}

// Direction is the sort order.
type Direction int

const (
	Desc Direction = iota
	Asc
)

// ParseDirection accepts "asc" or "desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc", "":
		return Desc, nil
	}
	return Desc, fmt.Errorf("unknown sort order %q (want asc or desc)", s)
}

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// Sort returns a copy of players ordered by key. Equal keys keep their input
// order in both directions.
func Sort(players []model.PlayerRecord, key Key, dir Direction) []model.PlayerRecord {
	out := slices.Clone(players)
	compare := comparator(key)
	slices.SortStableFunc(out, func(a, b model.PlayerRecord) int {
		c := compare(a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

func comparator(key Key) func(a, b model.PlayerRecord) int {
	switch key {
	case Nickname:
		return func(a, b model.PlayerRecord) int {
			return strings.Compare(strings.ToLower(a.Nickname), strings.ToLower(b.Nickname))
		}
	case KD:
		return byFloat(func(p model.PlayerRecord) float64 { return p.Stats.KDRatio() })
	case ADR:
		return byFloat(func(p model.PlayerRecord) float64 { return p.Stats.ADR() })
	case Deaths:
		return byInt(func(p model.PlayerRecord) int { return p.Stats.Deaths() })
	case HS:
		return byInt(func(p model.PlayerRecord) int { return p.Stats.HeadshotPct() })
	case Damage:
		return byInt(func(p model.PlayerRecord) int { return p.Stats.Damage() })
	case Assists:
		return byInt(func(p model.PlayerRecord) int { return p.Stats.Assists() })
	default:
		return byInt(func(p model.PlayerRecord) int { return p.Stats.Kills() })
	}
}

func byInt(v func(model.PlayerRecord) int) func(a, b model.PlayerRecord) int {
	return func(a, b model.PlayerRecord) int { return cmp.Compare(v(a), v(b)) }
}

func byFloat(v func(model.PlayerRecord) float64) func(a, b model.PlayerRecord) int {
	return func(a, b model.PlayerRecord) int { return cmp.Compare(v(a), v(b)) }
}
