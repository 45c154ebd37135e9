package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlexZinkM/evm-wallet/internal/model"
)

const (
	fieldSeparator = " | "
	keySeparator   = ": "

	keyAddress    = "Address"
	keyPrivateKey = "Private Key"
	keyMnemonic   = "Mnemonic"
)

// ParseError is returned when a saved line cannot be split into its fields
type ParseError struct {
	Line    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid wallet line %q: %s", e.Line, e.Message)
}

// FileSink appends one line per wallet to a text file.
// Keys are stored as plain text; the file is created with 0600 permissions.
type FileSink struct {
	path string
}

// NewFileSink creates a sink appending to path
func NewFileSink(path string) (*FileSink, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("output file path is empty")
	}

	// Refuse directories early, a missing file is created on first append
	if fileInfo, err := os.Stat(path); err == nil && fileInfo.IsDir() {
		return nil, fmt.Errorf("output path %s is a directory", path)
	}

	return &FileSink{path: path}, nil
}

// Path returns the file the sink appends to
func (s *FileSink) Path() string {
	return s.path
}

// Append writes the entry as a single line at the end of the file.
// The file is opened and closed on every call.
func (s *FileSink) Append(entry *model.Entry) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}

	if _, err := f.WriteString(FormatLine(&entry.Wallet)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}
	return nil
}

// FormatLine renders a wallet in the file format, newline included.
// Example: "Address: 0xf39F... | Private Key: 0xac09... | Mnemonic: test test ... junk\n"
func FormatLine(w *model.Wallet) string {
	return keyAddress + keySeparator + w.Address + fieldSeparator +
		keyPrivateKey + keySeparator + w.PrivateKey + fieldSeparator +
		keyMnemonic + keySeparator + w.Mnemonic + "\n"
}

// ParseLine reads a line written by FormatLine back into a wallet.
// The public key is not part of the file format and stays empty.
func ParseLine(line string) (*model.Wallet, error) {
	trimmed := strings.TrimRight(line, "\r\n")

	parts := strings.Split(trimmed, fieldSeparator)
	if len(parts) != 3 {
		return nil, &ParseError{Line: line, Message: fmt.Sprintf("expected 3 fields, got %d", len(parts))}
	}

	values := make(map[string]string, len(parts))
	for _, part := range parts {
		key, value, ok := strings.Cut(part, keySeparator)
		if !ok {
			return nil, &ParseError{Line: line, Message: fmt.Sprintf("field %q has no key", part)}
		}
		values[key] = value
	}

	w := &model.Wallet{}
	for key, dst := range map[string]*string{
		keyAddress:    &w.Address,
		keyPrivateKey: &w.PrivateKey,
		keyMnemonic:   &w.Mnemonic,
	} {
		value, ok := values[key]
		if !ok {
			return nil, &ParseError{Line: line, Message: fmt.Sprintf("missing %s", key)}
		}
		*dst = value
	}

	return w, nil
}
