package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pable/go-faceit-insights/internal/model"
)

// PrintProfile prints the player header, lifetime stats, recent form and
// match history. Sections without data are skipped.
func PrintProfile(w io.Writer, s model.ProfileSummary) {
	p := s.Profile
	name := cTeam.Sprint(p.Nickname)
	if p.Verified {
		name += " (verified)"
	}
	fmt.Fprintf(w, "\n%s  [%s]\n", name, orNone(strings.ToUpper(p.Country)))
	fmt.Fprintf(w, "Level: %s  |  ELO: %s  |  Region: %s\n",
		level(p.SkillLevel), elo(p.Elo), orNone(p.Region))
	if p.FaceitURL != "" {
		fmt.Fprintln(w, cMuted.Sprint(p.FaceitURL))
	}

	if s.HasLifetime {
		section(w, "Lifetime")
		table := newTable(w)
		table.Header("MATCHES", "WIN%", "AVG K/D", "AVG HS%")
		table.Append(
			strconv.Itoa(s.Matches),
			fmt.Sprintf("%.0f%%", s.WinRate),
			kd(s.AvgKD),
			fmt.Sprintf("%.0f%%", s.AvgHS),
		)
		table.Render()

		if len(s.Recent) > 0 {
			fmt.Fprintf(w, "Recent form: %s\n", form(s.Recent))
		}
	}

	if len(s.History) == 0 {
		return
	}
	section(w, "Match history")
	table := newTable(w)
	table.Header("DATE", "COMPETITION", "TEAM", "SCORE", "RESULT", "MATCH")
	for _, h := range s.History {
		date := none
		if !h.FinishedAt.IsZero() {
			date = h.FinishedAt.Format("2006-01-02 15:04")
		}
		result := cBad.Sprint("L")
		if h.Win {
			result = cGood.Sprint("W")
		}
		table.Append(date, orNone(h.Competition), orNone(h.Team), h.Score, result, h.MatchID)
	}
	table.Render()
}

func elo(v int) string {
	if v <= 0 {
		return none
	}
	return strconv.Itoa(v)
}

func form(recent []bool) string {
	parts := make([]string, 0, len(recent))
	for _, win := range recent {
		if win {
			parts = append(parts, cGood.Sprint("W"))
		} else {
			parts = append(parts, cBad.Sprint("L"))
		}
	}
	return strings.Join(parts, " ")
}
