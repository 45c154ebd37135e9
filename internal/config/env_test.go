package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./wallets_output.txt", c.OutputFile)
	assert.Equal(t, 85, c.BoxWidth)
	assert.Equal(t, 128, c.MnemonicBits)
	assert.Equal(t, "english", c.MnemonicLanguage)
	assert.Equal(t, "m/44'/60'/0'/0/0", c.DerivationPath)
	assert.False(t, c.ShowPublicKey)
	assert.False(t, c.ShowQR)
	assert.False(t, c.NoColor)
	assert.Equal(t, zerolog.InfoLevel, c.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EVM_WALLET_FILE", "/tmp/keys.txt")
	t.Setenv("EVM_WALLET_BOX_WIDTH", "120")
	t.Setenv("EVM_WALLET_MNEMONIC_BITS", "256")
	t.Setenv("EVM_WALLET_SHOW_QR", "true")
	t.Setenv("EVM_WALLET_LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/keys.txt", c.OutputFile)
	assert.Equal(t, 120, c.BoxWidth)
	assert.Equal(t, 256, c.MnemonicBits)
	assert.True(t, c.ShowQR)
	assert.Equal(t, zerolog.DebugLevel, c.Level())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"width not a number", "EVM_WALLET_BOX_WIDTH", "wide"},
		{"width too small", "EVM_WALLET_BOX_WIDTH", "10"},
		{"bits", "EVM_WALLET_MNEMONIC_BITS", "100"},
		{"log level", "EVM_WALLET_LOG_LEVEL", "loud"},
		{"empty file", "EVM_WALLET_FILE", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestInitAndGet(t *testing.T) {
	cfg = nil
	assert.Panics(t, func() { Get() })

	require.NoError(t, Init())
	assert.Equal(t, 85, Get().BoxWidth)
}
