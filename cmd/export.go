package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"strmsync/config"
	"strmsync/pkg/cache"
	"strmsync/pkg/catalog"
	"strmsync/pkg/enrichment"
	mhttp "strmsync/pkg/http"
	"strmsync/pkg/io"
	"strmsync/pkg/logger"
	"strmsync/pkg/manager"
	"strmsync/pkg/tmdb"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "export VOD catalogs into the library",
	Long:  `export fetches the configured accounts' movie and series catalogs and converges the library directories to match them.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, store, err := newManager(cfg)
		if err != nil {
			log.Fatal("failed to set up export", zap.Error(err))
		}
		defer store.Close()

		summary, err := m.Run(ctx)
		if err != nil {
			log.Fatal("export failed", zap.Error(err))
		}

		for _, result := range summary.Results {
			if result.Err != nil {
				fmt.Printf("%s: failed: %v\n", result.Account.DisplayName(), result.Err)
				continue
			}
			r := result.Report
			fmt.Printf("%s: %d created, %d updated, %d skipped, %d deleted, %d degraded, %d failed\n",
				result.Account.DisplayName(), r.Created, r.Updated, r.Skipped, r.Deleted, r.Degraded, r.Failed)
		}
		if summary.Failed > 0 {
			// a partial run still converged some accounts; only a total
			// failure is fatal
			if !summary.AnySucceeded() {
				log.Fatalf("all %d account(s) failed", summary.Failed)
			}
			log.Warnf("%d account(s) failed", summary.Failed)
		}
	},
}

// newManager wires the catalog client, TMDB client, cache store, and
// resolver into a Manager from configuration.
func newManager(cfg config.Config) (*manager.Manager, *cache.SQLite, error) {
	catalogClient, err := catalog.New(
		cfg.Catalog.URL,
		cfg.Catalog.Username,
		cfg.Catalog.Password,
		catalog.WithHTTPClient(mhttp.NewRateLimitedHTTPClient()),
		catalog.WithUserAgent(cfg.Catalog.UserAgent),
		catalog.WithPageSize(cfg.Catalog.PageSize),
		catalog.WithListingLimits(cfg.Catalog.LimitMovies, cfg.Catalog.LimitSeries),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create catalog client: %w", err)
	}

	store, err := cache.New(cfg.Cache.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}

	// without an API key every item degrades to catalog fields and the
	// export is pointer-only
	var resolver manager.MetadataResolver = enrichment.Disabled{}
	var tmdbClient tmdb.ClientInterface
	if cfg.TMDB.APIKey == "" {
		logger.Get().Warn("no TMDB api key configured, exporting without metadata")
	} else {
		client, err := tmdb.New(
			cfg.TMDB.APIKey,
			tmdb.WithLanguage(cfg.TMDB.Language),
			tmdb.WithHTTPClient(mhttp.NewThrottle(
				mhttp.NewRateLimitedHTTPClient(
					mhttp.WithMaxRetries(cfg.TMDB.MaxRetries),
					mhttp.WithBaseBackoff(cfg.TMDB.BaseBackoff),
				),
				cfg.TMDB.Throttle,
			)),
		)
		if err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("create tmdb client: %w", err)
		}
		tmdbClient = client
		resolver = enrichment.New(client, store)
	}

	m := manager.New(catalogClient, resolver, tmdbClient, store, &io.LibraryFileSystem{}, manager.Options{
		ProxyHost:       catalog.ProxyHost(cfg.Catalog.URL),
		MoviesDir:       cfg.Library.MoviesDir,
		SeriesDir:       cfg.Library.SeriesDir,
		AccountPatterns: cfg.Export.Accounts,
		Movies:          cfg.Export.Movies,
		Series:          cfg.Export.Series,
		NFO:             cfg.Export.NFO,
		Images:          cfg.Export.Images,
		OverwriteNFO:    cfg.Export.OverwriteNFO,
		OverwriteImages: cfg.Export.OverwriteImages,
		DeleteOld:       cfg.Export.DeleteOld,
		DryRun:          cfg.Export.DryRun,
		ClearCache:      cfg.Export.ClearCache,
		TagDenylist:     cfg.Export.TagDenylist,
	})
	return m, store, nil
}

func init() {
	exportCmd.Flags().Bool("dry-run", false, "log actions without writing anything")
	exportCmd.Flags().Bool("clear-cache", false, "clear the cache before exporting")
	exportCmd.Flags().Bool("delete-old", false, "delete files no longer in the catalog")
	exportCmd.Flags().StringSlice("accounts", nil, "account name globs to export")

	viper.BindPFlag("export.dryRun", exportCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("export.clearCache", exportCmd.Flags().Lookup("clear-cache"))
	viper.BindPFlag("export.deleteOld", exportCmd.Flags().Lookup("delete-old"))
	viper.BindPFlag("export.accounts", exportCmd.Flags().Lookup("accounts"))

	rootCmd.AddCommand(exportCmd)
}
