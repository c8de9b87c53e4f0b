// Package main is the entry point for the faceitstats CLI tool, which fetches
// FACEIT match and player statistics and derives badges, team comparisons and
// chart data from them.
package main

import "github.com/pable/go-faceit-insights/cmd"

func main() {
	cmd.Execute()
}
