package model

import "time"

// Wallet is the key material produced by one generation
type Wallet struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Mnemonic   string `json:"mnemonic"`
}

// Entry is a generated wallet numbered for display and persistence.
// It lives for a single display-and-save cycle.
type Entry struct {
	Wallet
	Sequence  int       `json:"sequence"` // 1-based
	Timestamp time.Time `json:"timestamp"`
}
