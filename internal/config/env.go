package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// minBoxWidth keeps room for the borders and a short label
const minBoxWidth = 20

// Config contains all configuration parameters for the application.
type Config struct {
	OutputFile       string `envconfig:"EVM_WALLET_FILE" default:"./wallets_output.txt"`
	BoxWidth         int    `envconfig:"EVM_WALLET_BOX_WIDTH" default:"85"`
	MnemonicBits     int    `envconfig:"EVM_WALLET_MNEMONIC_BITS" default:"128"`
	MnemonicLanguage string `envconfig:"EVM_WALLET_MNEMONIC_LANGUAGE" default:"english"`
	DerivationPath   string `envconfig:"EVM_WALLET_DERIVATION_PATH" default:"m/44'/60'/0'/0/0"`
	ShowPublicKey    bool   `envconfig:"EVM_WALLET_SHOW_PUBLIC_KEY" default:"false"`
	ShowQR           bool   `envconfig:"EVM_WALLET_SHOW_QR" default:"false"`
	NoColor          bool   `envconfig:"EVM_WALLET_NO_COLOR" default:"false"`
	LogLevel         string `envconfig:"EVM_WALLET_LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables and validates it.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads a fresh configuration from the environment without touching the global one
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Validate checks values envconfig cannot.
// Mnemonic language and derivation path are checked by the generator.
func (c *Config) Validate() error {
	if c.OutputFile == "" {
		return fmt.Errorf("EVM_WALLET_FILE must not be empty")
	}
	if c.BoxWidth < minBoxWidth {
		return fmt.Errorf("EVM_WALLET_BOX_WIDTH must be at least %d, got %d", minBoxWidth, c.BoxWidth)
	}
	switch c.MnemonicBits {
	case 128, 160, 192, 224, 256:
	default:
		return fmt.Errorf("EVM_WALLET_MNEMONIC_BITS must be one of 128, 160, 192, 224, 256, got %d", c.MnemonicBits)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("EVM_WALLET_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured log level, info when unset
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
