package evm

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// AddressQR renders the address as a QR code made of half-block characters,
// ready to be printed to a terminal
func AddressQR(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	return qr.ToSmallString(false), nil
}
