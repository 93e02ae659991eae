package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"strmsync/pkg/logger"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strmsync",
	Short: "mirror VOD catalogs into strm libraries",
	Long:  `strmsync mirrors Dispatcharr VOD catalogs into directories of strm pointer files with NFO sidecars and artwork.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func initConfig() {
	if logLevel != "" {
		logger.SetLevel(logLevel)
	}

	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("STRMSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("catalog.url", "")
	viper.SetDefault("catalog.username", "")
	viper.SetDefault("catalog.password", "")
	viper.SetDefault("catalog.userAgent", "strmsync/1.0")
	viper.SetDefault("catalog.pageSize", 250)
	viper.SetDefault("catalog.limitMovies", 0)
	viper.SetDefault("catalog.limitSeries", 0)

	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.language", "en-US")
	viper.SetDefault("tmdb.throttle", 250*time.Millisecond)
	viper.SetDefault("tmdb.backoff", time.Second)
	viper.SetDefault("tmdb.maxRetries", 3)

	viper.SetDefault("library.movies", "")
	viper.SetDefault("library.series", "")

	viper.SetDefault("cache.filePath", "strmsync.sqlite")

	viper.SetDefault("export.accounts", []string{})
	viper.SetDefault("export.movies", true)
	viper.SetDefault("export.series", true)
	viper.SetDefault("export.nfo", true)
	viper.SetDefault("export.images", false)
	viper.SetDefault("export.overwriteNfo", false)
	viper.SetDefault("export.overwriteImages", false)
	viper.SetDefault("export.deleteOld", false)
	viper.SetDefault("export.clearCache", false)
	viper.SetDefault("export.dryRun", false)
}
