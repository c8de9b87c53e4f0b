// Package report renders derived match and player data as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-faceit-insights/internal/aggregator"
	"github.com/pable/go-faceit-insights/internal/badge"
	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

var (
	cTeam   = color.New(color.FgCyan, color.Bold)
	cTitle  = color.New(color.Bold)
	cMuted  = color.New(color.Faint)
	cGood   = color.New(color.FgGreen)
	cBad    = color.New(color.FgRed)
	cBadge  = color.New(color.FgYellow)
	cWinner = color.New(color.FgGreen, color.Bold)
)

const none = "-"

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", cTitle.Sprint(title))
}

// kd formats a K/D ratio, green at or above 1 and red below.
func kd(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if v >= 1 {
		return cGood.Sprint(s)
	}
	return cBad.Sprint(s)
}

func level(l int) string {
	if l <= 0 {
		return none
	}
	return strconv.Itoa(l)
}

// PrintMatchHeader prints teams, score, map and server location.
func PrintMatchHeader(w io.Writer, m *model.Match) {
	a, b := m.TeamA.Name, m.TeamB.Name
	if m.Winner == a {
		a = cWinner.Sprint(a)
	}
	if m.Winner == b {
		b = cWinner.Sprint(b)
	}
	fmt.Fprintf(w, "\n%s  %d - %d  %s\n", a, m.ScoreA, m.ScoreB, b)
	fmt.Fprintf(w, "Map: %s  |  Rounds: %d  |  Location: %s",
		m.Map.Name, m.TotalRounds, m.Location.Name)
	if m.Region != "" {
		fmt.Fprintf(w, "  |  Region: %s", m.Region)
	}
	fmt.Fprintf(w, "  |  Match: %s\n", m.MatchID)

	ta, tb := m.TeamA.Stats, m.TeamB.Stats
	if len(ta) > 0 && len(tb) > 0 {
		fmt.Fprintln(w, cMuted.Sprintf("Halves: %s-%s / %s-%s",
			orNone(ta.String(stats.KeyFirstHalfScore)), orNone(tb.String(stats.KeyFirstHalfScore)),
			orNone(ta.String(stats.KeySecondHalfScore)), orNone(tb.String(stats.KeySecondHalfScore))))
	}
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}

// PrintTeamTable prints one roster with each player's badges.
func PrintTeamTable(w io.Writer, r aggregator.Roster, res badge.Result) {
	fmt.Fprintf(w, "\n%s\n", cTeam.Sprint(r.Name))

	table := newTable(w)
	table.Header("PLAYER", "LVL", "K", "A", "D", "K/D", "K/R", "HS%", "ADR", "DMG", "MVP", "BADGES")

	for _, p := range r.Players {
		s := p.Stats
		var labels []string
		for _, b := range res.For(p.PlayerID) {
			labels = append(labels, b.Label)
		}
		badges := none
		if len(labels) > 0 {
			badges = cBadge.Sprint(strings.Join(labels, ", "))
		}
		table.Append(
			p.Nickname,
			level(p.SkillLevel),
			strconv.Itoa(s.Kills()),
			strconv.Itoa(s.Assists()),
			strconv.Itoa(s.Deaths()),
			kd(s.KDRatio()),
			fmt.Sprintf("%.2f", s.KRRatio()),
			fmt.Sprintf("%d%%", s.HeadshotPct()),
			fmt.Sprintf("%.1f", s.ADR()),
			strconv.Itoa(s.Damage()),
			strconv.Itoa(s.MVPs()),
			badges,
		)
	}
	table.Render()
}

// PrintTeamComparison prints side-by-side team totals with their share.
func PrintTeamComparison(w io.Writer, a, b aggregator.Roster) {
	section(w, "Team comparison")

	table := newTable(w)
	table.Header("STAT", a.Name, b.Name, a.Name+"%", b.Name+"%")
	for _, row := range aggregator.CompareTeams(a, b) {
		table.Append(
			row.Label,
			fmt.Sprintf("%.0f", row.A),
			fmt.Sprintf("%.0f", row.B),
			fmt.Sprintf("%.0f%%", row.ShareA),
			fmt.Sprintf("%.0f%%", row.ShareB),
		)
	}
	table.Render()
}

// PrintTeamProfiles prints the averaged radar profile of each roster. A team
// without players shows as a column of dashes.
func PrintTeamProfiles(w io.Writer, rosters ...aggregator.Roster) {
	section(w, "Team profile")

	header := []any{"METRIC"}
	cols := make([][]string, 0, len(rosters))
	for _, r := range rosters {
		header = append(header, r.Name)
		prof, ok := aggregator.TeamProfile(r)
		if !ok {
			cols = append(cols, []string{none, none, none, none, none, none})
			continue
		}
		cols = append(cols, []string{
			fmt.Sprintf("%.1f", prof.ADR),
			fmt.Sprintf("%.0f", prof.HeadshotPct),
			fmt.Sprintf("%.0f", prof.EntrySuccess),
			fmt.Sprintf("%.0f", prof.UtilityDamage),
			fmt.Sprintf("%.0f", prof.FlashEfficacy),
			fmt.Sprintf("%.0f", prof.KDx100),
		})
	}

	table := newTable(w)
	table.Header(header...)
	labels := []string{"Avg ADR", "Avg HS%", "Entry success", "Avg utility dmg", "Flash efficiency", "K/D x100"}
	for i, label := range labels {
		row := []any{label}
		for _, c := range cols {
			row = append(row, c[i])
		}
		table.Append(row...)
	}
	table.Render()
}

// PrintBadgeCatalogue lists every rule of c.
func PrintBadgeCatalogue(w io.Writer, c badge.Catalogue) {
	fmt.Fprintf(w, "Badge catalogue v%d\n", c.Version)

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("#", "BADGE", "CATEGORY", "DESCRIPTION")
	for i, r := range c.Rules {
		table.Append(strconv.Itoa(i+1), r.Badge.Label, string(r.Badge.Category), r.Badge.Description)
	}
	table.Render()
}
