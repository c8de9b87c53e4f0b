package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-faceit-insights/internal/badge"
	"github.com/pable/go-faceit-insights/internal/report"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List the badge catalogue in evaluation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report.PrintBadgeCatalogue(os.Stdout, badge.NewEngine(badge.Default()).Catalogue())
		return nil
	},
}
