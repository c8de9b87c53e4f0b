package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var cacheDropForce bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or delete the match payload cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached match payloads",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

// cacheDropCmd deletes the cache database file.
var cacheDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the payload cache",
	Long:  "Permanently delete the SQLite payload cache. Match payloads are fetched again on next use.",
	Args:  cobra.NoArgs,
	RunE:  runCacheDrop,
}

func init() {
	cacheDropCmd.Flags().BoolVarP(&cacheDropForce, "force", "f", false, "skip confirmation prompt")

	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheDropCmd)
}

func runCacheList(cmd *cobra.Command, args []string) error {
	db, err := openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	entries, err := db.ListPayloads(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "Cache is empty. Run 'faceitstats match <match-id>' to fill it.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-60s  %10s  %10s  %s\n", "KEY", "RAW", "STORED", "FETCHED")
	fmt.Fprintf(os.Stdout, "%-60s  %10s  %10s  %s\n",
		"────────────────────────────────────────────────────────────", "──────────", "──────────", "────────────────")
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-60s  %10d  %10d  %s\n",
			e.Key, e.RawSize, e.StoredSize, e.FetchedAt.Format("2006-01-02 15:04"))
	}

	st, err := db.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\n%d entries, %d bytes raw, %d bytes stored\n", st.Entries, st.RawBytes, st.StoredBytes)
	return nil
}

func runCacheDrop(cmd *cobra.Command, args []string) error {
	if !cacheDropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", cfg.DBPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.Remove(cfg.DBPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Cache does not exist, nothing to drop.")
			return nil
		}
		return errors.Wrap(err, "remove cache")
	}
	// WAL side files; absent when the database was closed cleanly.
	for _, suffix := range []string{"-wal", "-shm"} {
		_ = os.Remove(cfg.DBPath + suffix)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", cfg.DBPath)
	return nil
}
