package cmd

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/pable/go-faceit-insights/internal/aggregator"
	"github.com/pable/go-faceit-insights/internal/badge"
	"github.com/pable/go-faceit-insights/internal/faceit"
	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/ranking"
	"github.com/pable/go-faceit-insights/internal/report"
)

var (
	matchSort   string
	matchOrder  string
	matchCharts bool
)

var matchCmd = &cobra.Command{
	Use:   "match <match-id>",
	Short: "Show the scoreboard, badges and team comparison of a match",
	Long: `Fetch a FACEIT match and print one table per team with badges, followed by
the team comparison and radar profile. With --charts the impact matrix, entry
duels, utility, kill distribution, multi-kills, clutches and level vs K/D
tables are printed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchSort, "sort", string(ranking.Kills), "sort players by: nickname, kd, kills, deaths, adr, hs, damage, assists")
	matchCmd.Flags().StringVar(&matchOrder, "order", "desc", "sort order: asc or desc")
	matchCmd.Flags().BoolVar(&matchCharts, "charts", false, "also print the chart tables")
}

// matchReport is everything derived from one match snapshot.
type matchReport struct {
	Match   model.Match
	Badges  badge.Result
	Rosters []aggregator.Roster // two teams, or a single AllPlayers list
}

func runMatch(cmd *cobra.Command, args []string) error {
	key, err := ranking.ParseKey(matchSort)
	if err != nil {
		return err
	}
	dir, err := ranking.ParseDirection(matchOrder)
	if err != nil {
		return err
	}

	client, closeFn, err := newClient()
	if err != nil {
		return err
	}
	defer closeFn()

	m, err := fetchMatch(cmd.Context(), client, args[0])
	if err != nil {
		return err
	}
	rep := deriveReport(m)

	w := os.Stdout
	report.PrintMatchHeader(w, &rep.Match)
	for _, r := range rep.Rosters {
		r.Players = ranking.Sort(r.Players, key, dir)
		report.PrintTeamTable(w, r, rep.Badges)
	}
	if len(rep.Rosters) == 2 {
		report.PrintTeamComparison(w, rep.Rosters[0], rep.Rosters[1])
	}
	report.PrintTeamProfiles(w, rep.Rosters...)
	if matchCharts {
		report.PrintCharts(w, &rep.Match)
	}
	return nil
}

// fetchMatch loads details and stats concurrently; either failing cancels
// the other.
func fetchMatch(ctx context.Context, client *faceit.Client, matchID string) (model.Match, error) {
	var (
		detail *faceit.MatchDetail
		ms     *faceit.MatchStats
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		detail, err = client.GetMatch(ctx, matchID)
		return errors.Wrap(err, "fetch match details")
	})
	p.Go(func(ctx context.Context) error {
		var err error
		ms, err = client.GetMatchStats(ctx, matchID)
		return errors.Wrap(err, "fetch match stats")
	})
	if err := p.Wait(); err != nil {
		return model.Match{}, err
	}

	m, err := faceit.BuildMatch(detail, ms)
	if err != nil {
		return model.Match{}, errors.Wrapf(err, "match %s", matchID)
	}
	log.Debug("match loaded", "match_id", m.MatchID, "players", len(m.Players), "rounds", m.TotalRounds)
	return m, nil
}

// deriveReport runs the badge engine over the whole population and splits
// players into rosters. Players on neither team still compete for badges.
func deriveReport(m model.Match) matchReport {
	rep := matchReport{
		Match: m,
		Badges: badge.NewEngine(badge.Default()).Evaluate(badge.Input{
			Players:     m.Players,
			TotalRounds: m.TotalRounds,
		}),
	}
	if m.HasTeams() {
		a, b := aggregator.Partition(m.Players, m.TeamA.Name, m.TeamB.Name)
		rep.Rosters = []aggregator.Roster{a, b}
	} else {
		rep.Rosters = []aggregator.Roster{aggregator.SingleList(m.Players, "")}
	}
	return rep
}
