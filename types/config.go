package types

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "NFT_COLLECTION"

type (
	Config struct {
		Type                int    `mapstructure:"type"`
		Name                string `mapstructure:"name"`
		RPC                 string `mapstructure:"rpc"`
		WSRPC               string `mapstructure:"ws_rpc"`
		NativeTokenSymbol   string `mapstructure:"native_token_symbol"`
		NativeTokenDecimals uint8  `mapstructure:"native_token_decimals"`

		// Commitment is the level a dispatched transaction must reach before
		// the operation returns.
		Commitment     string        `mapstructure:"commitment"`
		ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
		SkipPreflight  bool          `mapstructure:"skip_preflight"`
		WatchBlockHash bool          `mapstructure:"watch_block_hash"`

		CacheTTL time.Duration `mapstructure:"cache_ttl"`
		LogLevel string        `mapstructure:"log_level"`
	}
)

var DefaultConfig = Config{
	Type:                NetworkTypeSol,
	Name:                "solana",
	RPC:                 "https://api.mainnet-beta.solana.com",
	NativeTokenSymbol:   "SOL",
	NativeTokenDecimals: 9,
	Commitment:          "confirmed",
	ConfirmTimeout:      60 * time.Second,
	WatchBlockHash:      true,
	CacheTTL:            10 * time.Second,
	LogLevel:            "info",
}

var configKeys = []string{
	"type",
	"name",
	"rpc",
	"ws_rpc",
	"native_token_symbol",
	"native_token_decimals",
	"commitment",
	"confirm_timeout",
	"skip_preflight",
	"watch_block_hash",
	"cache_ttl",
	"log_level",
}

// LoadConfig reads the configuration from DefaultConfig, then the file at path
// when it exists, then NFT_COLLECTION_* environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	for _, key := range configKeys {
		_ = v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key))
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "failed to read config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to check if config exists")
		}
	}

	cfg := DefaultConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.RPC == "" {
		return errors.New("rpc endpoint is required")
	}
	switch c.Commitment {
	case "processed", "confirmed", "finalized":
	default:
		return errors.Errorf("unsupported commitment %q", c.Commitment)
	}
	if c.ConfirmTimeout <= 0 {
		return errors.New("confirm timeout must be positive")
	}
	return nil
}
