package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"strmsync/config"
	"strmsync/pkg/cache"
	"strmsync/pkg/logger"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "inspect or clear the export cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show cache row counts and size",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		store := openCache(log)
		defer store.Close()

		stats, err := store.Stats(cmd.Context())
		if err != nil {
			log.Fatal("failed to read cache stats", zap.Error(err))
		}

		fmt.Printf("artifacts:   %d\n", stats.Artifacts)
		fmt.Printf("enrichments: %d\n", stats.Enrichments)
		fmt.Printf("snapshots:   %d\n", stats.Snapshots)
		fmt.Printf("size:        %s\n", humanize.Bytes(uint64(stats.SizeBytes)))
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "empty the export cache",
	Long:  `clear empties every cache table. Exported files on disk are untouched; the next export re-verifies them against disk content.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		store := openCache(log)
		defer store.Close()

		if err := store.ClearAll(cmd.Context()); err != nil {
			log.Fatal("failed to clear cache", zap.Error(err))
		}
		fmt.Println("cache cleared")
	},
}

func openCache(log *zap.SugaredLogger) *cache.SQLite {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	store, err := cache.New(cfg.Cache.FilePath)
	if err != nil {
		log.Fatal("failed to open cache", zap.Error(err))
	}
	return store
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
