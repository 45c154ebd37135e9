package evm

import (
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/AlexZinkM/evm-wallet/internal/model"
)

const (
	// DefaultPath is the first account of the standard Ethereum BIP-44 path
	DefaultPath = "m/44'/60'/0'/0/0"

	// DefaultEntropyBits gives a 12-word mnemonic
	DefaultEntropyBits = 128

	// DefaultLanguage is the wordlist used unless configured otherwise
	DefaultLanguage = "english"
)

var languages = map[string][]string{
	"english":             wordlists.English,
	"chinese_simplified":  wordlists.ChineseSimplified,
	"chinese_traditional": wordlists.ChineseTraditional,
	"czech":               wordlists.Czech,
	"french":              wordlists.French,
	"italian":             wordlists.Italian,
	"japanese":            wordlists.Japanese,
	"korean":              wordlists.Korean,
	"spanish":             wordlists.Spanish,
}

// ErrUnsupportedLanguage is returned for unknown mnemonic languages
var ErrUnsupportedLanguage = errors.New("unsupported mnemonic language")

// Languages returns the supported mnemonic languages in alphabetical order
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options configures a Generator. Zero values fall back to the defaults.
type Options struct {
	EntropyBits int
	Language    string
	Path        string
}

// Generator creates random EVM wallets backed by a BIP-39 mnemonic
type Generator struct {
	bits int
	path accounts.DerivationPath
}

// NewGenerator validates options and selects the mnemonic wordlist.
// The wordlist is process-wide in go-bip39, so the last generator created wins.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.EntropyBits == 0 {
		opts.EntropyBits = DefaultEntropyBits
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Path == "" {
		opts.Path = DefaultPath
	}

	// Check entropy size (128..256, multiple of 32)
	if opts.EntropyBits < 128 || opts.EntropyBits > 256 || opts.EntropyBits%32 != 0 {
		return nil, fmt.Errorf("entropy must be 128-256 bits in steps of 32, got %d", opts.EntropyBits)
	}

	wordlist, ok := languages[opts.Language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, opts.Language)
	}

	path, err := accounts.ParseDerivationPath(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %q: %w", opts.Path, err)
	}

	bip39.SetWordList(wordlist)

	return &Generator{
		bits: opts.EntropyBits,
		path: path,
	}, nil
}

// Path returns the derivation path in its canonical form
func (g *Generator) Path() string {
	return g.path.String()
}

// Generate creates a new random wallet
func (g *Generator) Generate() (*model.Wallet, error) {
	entropy, err := bip39.NewEntropy(g.bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to create mnemonic: %w", err)
	}

	return g.FromMnemonic(mnemonic)
}

// FromMnemonic derives the wallet for mnemonic at the generator's path.
// The mnemonic must use the active wordlist and carry a valid checksum.
func (g *Generator) FromMnemonic(mnemonic string) (*model.Wallet, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	defer clear(seed)

	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	// Walk the path, hardened indexes are already offset by the parser
	for _, index := range g.path {
		key, err = key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %d: %w", index, err)
		}
	}

	ecPrivKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}
	keyBytes := ecPrivKey.Serialize()
	defer clear(keyBytes)

	privateKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to convert private key: %w", err)
	}

	return &model.Wallet{
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey).Hex(),
		PrivateKey: hexutil.Encode(crypto.FromECDSA(privateKey)),
		PublicKey:  hexutil.Encode(crypto.FromECDSAPub(&privateKey.PublicKey)),
		Mnemonic:   mnemonic,
	}, nil
}
