package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stylewheel/pkg/httputil"
)

// cacheCommand shows the catalog response cache; its subcommands clear it
// or print its location.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the catalog response cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			dir, err := httputil.DefaultDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			cache, err := httputil.NewCache(dir, cfg.Catalog.CacheTTL)
			if err != nil {
				return err
			}
			st, err := cache.Stats()
			if err != nil {
				return err
			}
			printCacheStats(cmd, dir, cfg.Catalog.CacheTTL, st)
			return nil
		},
	}
	cmd.AddCommand(c.cacheClearCommand(), c.cachePathCommand())
	return cmd
}

func printCacheStats(cmd *cobra.Command, dir string, ttl time.Duration, st httputil.Stats) {
	out := cmd.OutOrStdout()
	printKeyValue(out, "Directory", dir)
	printKeyValue(out, "Entries", fmt.Sprintf("%d (%d expired)", st.Entries, st.Expired))
	printKeyValue(out, "Size", humanize.Bytes(uint64(st.Bytes)))
	printKeyValue(out, "TTL", ttl.String())
	if !st.Oldest.IsZero() {
		printKeyValue(out, "Oldest", humanize.Time(st.Oldest))
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached catalog responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir, err := httputil.DefaultDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo(out, "Cache is empty")
				return nil
			}

			cache, err := httputil.NewCache(dir, 0)
			if err != nil {
				return err
			}
			n, err := cache.Clear()
			if err != nil {
				return err
			}
			printSuccess(out, "Cleared %d cached entries", n)
			printDetail(out, "Directory: %s", dir)
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := httputil.DefaultDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
