package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/pable/go-faceit-insights/internal/aggregator"
	"github.com/pable/go-faceit-insights/internal/faceit"
	"github.com/pable/go-faceit-insights/internal/report"
)

var playerLimit int

var playerCmd = &cobra.Command{
	Use:   "player <nickname|player-id|steamid64>",
	Short: "Show a player's profile, lifetime stats and recent matches",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func init() {
	playerCmd.Flags().IntVar(&playerLimit, "limit", 0, "number of history matches to show (default from config)")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	limit := cfg.HistoryLimit
	if playerLimit > 0 {
		limit = playerLimit
	}

	client, closeFn, err := newClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	player, err := resolvePlayer(ctx, client, args[0])
	if err != nil {
		return err
	}

	var (
		history  []faceit.MatchHistoryItem
		lifetime *faceit.PlayerStats
	)
	// History and lifetime stats are optional sections: failures are logged
	// and never cancel the sibling request.
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := client.GetMatchHistory(ctx, player.PlayerID, cfg.Game, 0, limit)
		if err != nil {
			log.Warn("match history unavailable", "player_id", player.PlayerID, "error", err)
			return nil
		}
		history = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		ps, err := client.GetPlayerStats(ctx, player.PlayerID, cfg.Game)
		if err != nil {
			log.Warn("lifetime stats unavailable", "player_id", player.PlayerID, "error", err)
			return nil
		}
		lifetime = ps
		return nil
	})
	if err := p.Wait(); err != nil {
		return err
	}

	summary := aggregator.SummarizeProfile(
		faceit.BuildProfile(player, cfg.Game),
		faceit.BuildLifetime(lifetime),
		faceit.BuildHistory(history),
		limit,
	)
	report.PrintProfile(os.Stdout, summary)
	return nil
}

// resolvePlayer looks a player up by SteamID64, FACEIT player id or nickname.
// A 404 on the id lookup falls through to the nickname lookup.
func resolvePlayer(ctx context.Context, client *faceit.Client, query string) (*faceit.Player, error) {
	if looksLikeSteamID(query) {
		p, err := client.GetPlayerBySteamID(ctx, query)
		return p, errors.Wrapf(err, "look up steam id %s", query)
	}
	if looksLikePlayerID(query) {
		p, err := client.GetPlayer(ctx, query)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, faceit.ErrNotFound) {
			return nil, errors.Wrapf(err, "look up player %s", query)
		}
	}
	p, err := client.GetPlayerByNickname(ctx, query)
	return p, errors.Wrapf(err, "look up nickname %s", query)
}

// looksLikeSteamID returns true if s is a numeric string of at least 15 digits,
// the shape of a SteamID64.
func looksLikeSteamID(s string) bool {
	if len(s) < 15 {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// looksLikePlayerID matches the dashed UUID form of FACEIT player ids.
func looksLikePlayerID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}
