package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const configDirName = ".so-importer"

// DefaultAPIURL is the Stack Exchange API endpoint
const DefaultAPIURL = "https://api.stackexchange.com"

// DefaultAPIVersion is the API version every method is called on
const DefaultAPIVersion = "2.3"

// DefaultSite is the Stack Exchange site queried
const DefaultSite = "stackoverflow"

// EnvPrefix prefixes every environment variable read by the CLI
const EnvPrefix = "SO_IMPORTER"

const registerHint = "Register your app at `https://stackapps.com/apps/oauth/register`"

type Config struct {
	APIUrl      string `json:"api_url" mapstructure:"api_url" validate:"required,url"`
	APIVersion  string `json:"api_version" mapstructure:"api_version" validate:"required"`
	Site        string `json:"site" mapstructure:"site" validate:"required"`
	AccessToken string `json:"access_token" mapstructure:"access_token"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded values before they are used to build requests
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Dir returns the directory holding the config file
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName), nil
}

func Init() error {
	configDir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	viper.AddConfigPath(configDir)
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("api_url", DefaultAPIURL)
	viper.SetDefault("api_version", DefaultAPIVersion)
	viper.SetDefault("site", DefaultSite)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// SO_IMPORTER_TOKEN is the name users already export
	return viper.BindEnv("access_token", EnvPrefix+"_TOKEN")
}

func Load() (*Config, error) {
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Save() error {
	viper.Set("api_url", cfg.APIUrl)
	viper.Set("api_version", cfg.APIVersion)
	viper.Set("site", cfg.Site)
	viper.Set("access_token", cfg.AccessToken)

	// creates if doesn't exist
	err := viper.SafeWriteConfig()
	if err != nil {
		// if file exists, we overwrite
		return viper.WriteConfig()
	}
	return nil
}

func Clear() error {
	configDir, err := Dir()
	if err != nil {
		return err
	}
	// If the path does not exist, RemoveAll returns nil
	return os.RemoveAll(configDir)
}

// Lookup returns the environment variable SO_IMPORTER_<name>, logging an
// error when it is unset or empty.
func Lookup(log zerolog.Logger, name string) string {
	if name == "" {
		log.Error().Msg("an environment variable name must be supplied")
		return ""
	}
	variable := EnvPrefix + "_" + strings.ToUpper(name)
	value, ok := os.LookupEnv(variable)
	if !ok || value == "" {
		log.Error().Str("variable", variable).Msg("couldn't find the environment variable")
		return ""
	}
	return value
}

// RetrieveClientID returns the OAuth client id from SO_IMPORTER_CLIENT_ID
func RetrieveClientID(log zerolog.Logger) string {
	id := Lookup(log, "client_id")
	if id == "" {
		log.Error().Msg("The client ID is missing. " + registerHint +
			" and set SO_IMPORTER_CLIENT_ID to the client id provided by StackApps.")
	}
	return id
}

// RetrieveClientSecret returns SO_IMPORTER_CLIENT_SECRET. It is only needed
// to exchange an authorization code, so a missing secret is not reported.
func RetrieveClientSecret() string {
	return os.Getenv(EnvPrefix + "_CLIENT_SECRET")
}

// RetrieveKey returns the API key from SO_IMPORTER_KEY
func RetrieveKey(log zerolog.Logger) string {
	key := Lookup(log, "key")
	if key == "" {
		log.Error().Msg("The key is missing. " + registerHint +
			" and set SO_IMPORTER_KEY to the key provided by StackApps.")
	}
	return key
}

// RetrieveToken returns the access token from SO_IMPORTER_TOKEN, falling
// back to the token stored by `so-importer auth`.
func RetrieveToken(log zerolog.Logger, cfg *Config) string {
	if token := os.Getenv(EnvPrefix + "_TOKEN"); token != "" {
		return token
	}
	if cfg != nil && cfg.AccessToken != "" {
		log.Debug().Msg("using the access token stored in the config file")
		return cfg.AccessToken
	}
	log.Error().Msg("The OAuth token is missing. Run `so-importer auth` and complete" +
		" the authentication, or set SO_IMPORTER_TOKEN to the token it prints.")
	return ""
}
