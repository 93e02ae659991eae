package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Catalog Catalog `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Library Library `json:"library" yaml:"library" mapstructure:"library"`
	Cache   Cache   `json:"cache" yaml:"cache" mapstructure:"cache"`
	Export  Export  `json:"export" yaml:"export" mapstructure:"export"`
}

// Catalog points at the Dispatcharr instance that owns the VOD accounts.
type Catalog struct {
	URL       string `json:"url" yaml:"url" mapstructure:"url" validate:"required,url"`
	Username  string `json:"username" yaml:"username" mapstructure:"username" validate:"required"`
	Password  string `json:"password" yaml:"password" mapstructure:"password"`
	UserAgent string `json:"userAgent" yaml:"userAgent" mapstructure:"userAgent"`
	PageSize  int    `json:"pageSize" yaml:"pageSize" mapstructure:"pageSize" validate:"gt=0"`
	// Optional item caps for faster test runs; zero means unlimited.
	LimitMovies int `json:"limitMovies" yaml:"limitMovies" mapstructure:"limitMovies" validate:"gte=0"`
	LimitSeries int `json:"limitSeries" yaml:"limitSeries" mapstructure:"limitSeries" validate:"gte=0"`
}

type TMDB struct {
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	Language    string        `json:"language" yaml:"language" mapstructure:"language"`
	Throttle    time.Duration `json:"throttle" yaml:"throttle" mapstructure:"throttle"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// Library holds the output root templates. The {account} placeholder is
// replaced with the sanitized account name.
type Library struct {
	MoviesDir string `json:"movies" yaml:"movies" mapstructure:"movies" validate:"required"`
	SeriesDir string `json:"series" yaml:"series" mapstructure:"series" validate:"required"`
}

// Cache configuration is for the sqlite snapshot database.
type Cache struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// Export carries the per-run feature toggles.
type Export struct {
	Accounts        []string `json:"accounts" yaml:"accounts" mapstructure:"accounts"`
	Movies          bool     `json:"movies" yaml:"movies" mapstructure:"movies"`
	Series          bool     `json:"series" yaml:"series" mapstructure:"series"`
	NFO             bool     `json:"nfo" yaml:"nfo" mapstructure:"nfo"`
	Images          bool     `json:"images" yaml:"images" mapstructure:"images"`
	OverwriteNFO    bool     `json:"overwriteNfo" yaml:"overwriteNfo" mapstructure:"overwriteNfo"`
	OverwriteImages bool     `json:"overwriteImages" yaml:"overwriteImages" mapstructure:"overwriteImages"`
	DeleteOld       bool     `json:"deleteOld" yaml:"deleteOld" mapstructure:"deleteOld"`
	ClearCache      bool     `json:"clearCache" yaml:"clearCache" mapstructure:"clearCache"`
	DryRun          bool     `json:"dryRun" yaml:"dryRun" mapstructure:"dryRun"`
	// TagDenylist overrides the default release-tag tokens stripped from
	// titles; empty keeps the built-in list.
	TagDenylist []string `json:"tagDenylist" yaml:"tagDenylist" mapstructure:"tagDenylist"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads and validates a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(c)
	return c, err
}
