package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pable/go-faceit-insights/internal/aggregator"
	"github.com/pable/go-faceit-insights/internal/model"
)

// ClutchLeaderLimit caps the clutch leaderboard.
const ClutchLeaderLimit = 6

// PrintCharts prints every chart table derived from the match.
func PrintCharts(w io.Writer, m *model.Match) {
	PrintImpactMatrix(w, aggregator.ImpactMatrix(m.Players, m.TotalRounds))
	PrintKDvsADR(w, aggregator.KDvsADR(m.Players))
	PrintEntryDuels(w, aggregator.EntryDuels(m.Players))
	PrintUtility(w, aggregator.UtilityUsage(m.Players))
	PrintKillDistribution(w, aggregator.KillDistribution(m.Players))
	PrintMultikills(w, aggregator.Multikills(m.Players))
	PrintClutches(w, aggregator.ClutchAttempts(m.Players))
	PrintClutchLeaders(w, aggregator.ClutchLeaders(m.Players, ClutchLeaderLimit))
	PrintLevelVsKD(w, aggregator.LevelVsKD(m.Players))
}

func empty(w io.Writer, what string) {
	fmt.Fprintln(w, cMuted.Sprintf("No %s in this match.", what))
}

// PrintImpactMatrix prints survival rate against kills per round.
//
// Columns: PLAYER, SURVIVAL, IMPACT, K/D, QUADRANT
func PrintImpactMatrix(w io.Writer, points []aggregator.ImpactPoint) {
	section(w, "Impact matrix")
	if len(points) == 0 {
		empty(w, "round data")
		return
	}
	table := newTable(w)
	table.Header("PLAYER", "SURVIVAL", "IMPACT", "K/D", "QUADRANT")
	for _, p := range points {
		table.Append(
			p.Nickname,
			fmt.Sprintf("%.2f", p.Survival),
			fmt.Sprintf("%.2f", p.Impact),
			kd(p.KD),
			p.Quadrant,
		)
	}
	table.Render()
}

// PrintKDvsADR prints the K/D and ADR pair of each player.
func PrintKDvsADR(w io.Writer, points []aggregator.ScatterPoint) {
	section(w, "K/D vs ADR")
	table := newTable(w)
	table.Header("PLAYER", "K/D", "ADR")
	for _, p := range points {
		table.Append(p.Nickname, kd(p.KD), fmt.Sprintf("%.1f", p.ADR))
	}
	table.Render()
}

// PrintEntryDuels prints opening duel volume and success.
//
// Columns: PLAYER, ENTRIES, SUCCESS%, FK, WEIGHT
func PrintEntryDuels(w io.Writer, points []aggregator.EntryPoint) {
	section(w, "Entry duels")
	if len(points) == 0 {
		empty(w, "entry duels")
		return
	}
	table := newTable(w)
	table.Header("PLAYER", "ENTRIES", "SUCCESS%", "FK", "WEIGHT")
	for _, p := range points {
		table.Append(
			p.Nickname,
			strconv.Itoa(p.Entries),
			fmt.Sprintf("%.0f%%", p.SuccessPct),
			strconv.Itoa(p.FirstKills),
			strconv.Itoa(p.Radius),
		)
	}
	table.Render()
}

// PrintUtility prints utility damage and flash usage.
func PrintUtility(w io.Writer, rows []aggregator.UtilityRow) {
	section(w, "Utility")
	table := newTable(w)
	table.Header("PLAYER", "UTIL DMG", "FLASHED", "FLASHES")
	for _, r := range rows {
		table.Append(r.Nickname, strconv.Itoa(r.UtilityDamage), strconv.Itoa(r.EnemiesFlashed), strconv.Itoa(r.FlashCount))
	}
	table.Render()
}

// PrintKillDistribution splits each player's kills by weapon class.
func PrintKillDistribution(w io.Writer, rows []aggregator.KillSplit) {
	section(w, "Kill distribution")
	table := newTable(w)
	table.Header("PLAYER", "KILLS", "SNIPER", "PISTOL", "OTHER")
	for _, r := range rows {
		table.Append(r.Nickname, strconv.Itoa(r.Kills), strconv.Itoa(r.Sniper), strconv.Itoa(r.Pistol), strconv.Itoa(r.Other))
	}
	table.Render()
}

// PrintMultikills prints rounds with two or more kills.
func PrintMultikills(w io.Writer, rows []aggregator.MultikillRow) {
	section(w, "Multi-kills")
	if len(rows) == 0 {
		empty(w, "multi-kill rounds")
		return
	}
	table := newTable(w)
	table.Header("PLAYER", "2K", "3K", "4K", "5K", "TOTAL")
	for _, r := range rows {
		table.Append(
			r.Nickname,
			strconv.Itoa(r.Double),
			strconv.Itoa(r.Triple),
			strconv.Itoa(r.Quadro),
			strconv.Itoa(r.Penta),
			strconv.Itoa(r.Total()),
		)
	}
	table.Render()
}

// PrintClutches prints 1v1 and 1v2 attempts and wins.
//
// Columns: PLAYER, 1v1, 1v2, WINS, ATTEMPTS, CLUTCH K
func PrintClutches(w io.Writer, rows []aggregator.ClutchRow) {
	section(w, "Clutches")
	if len(rows) == 0 {
		empty(w, "clutch situations")
		return
	}
	table := newTable(w)
	table.Header("PLAYER", "1v1", "1v2", "WINS", "ATTEMPTS", "CLUTCH K")
	for _, r := range rows {
		table.Append(
			r.Nickname,
			fmt.Sprintf("%d/%d", r.OneVOneWins, r.OneVOne),
			fmt.Sprintf("%d/%d", r.OneVTwoWins, r.OneVTwo),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Attempts),
			strconv.Itoa(r.ClutchKills),
		)
	}
	table.Render()
}

// PrintClutchLeaders prints players with clutch wins or kills, most clutch
// kills first.
func PrintClutchLeaders(w io.Writer, rows []aggregator.ClutchRow) {
	section(w, "Clutch leaders")
	if len(rows) == 0 {
		empty(w, "clutch wins")
		return
	}
	table := newTable(w)
	table.Header("#", "PLAYER", "CLUTCH K", "WINS")
	for i, r := range rows {
		table.Append(strconv.Itoa(i+1), r.Nickname, strconv.Itoa(r.ClutchKills), strconv.Itoa(r.Wins))
	}
	table.Render()
}

// PrintLevelVsKD prints K/D ordered by FACEIT level.
func PrintLevelVsKD(w io.Writer, rows []aggregator.LevelBar) {
	section(w, "Level vs K/D")
	table := newTable(w)
	table.Header("PLAYER", "LVL", "K/D")
	for _, r := range rows {
		table.Append(r.Nickname, level(r.SkillLevel), kd(r.KD))
	}
	table.Render()
}
