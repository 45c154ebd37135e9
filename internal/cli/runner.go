package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AlexZinkM/evm-wallet/internal/display"
	"github.com/AlexZinkM/evm-wallet/internal/model"
)

// PromptText is shown when asking for the number of wallets
const PromptText = "Number of wallets to generate: "

var (
	// ErrInvalidInput is returned when the requested count is not a positive integer
	ErrInvalidInput = errors.New("invalid input: expected a positive number")

	// ErrMissingAddress is reported when the generator returns a wallet without an address
	ErrMissingAddress = errors.New("generated wallet has no address")
)

// UnexpectedError wraps a panic raised inside the generation loop
type UnexpectedError struct {
	Value any
	Stack []byte
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Value)
}

// Generator produces a fresh random wallet on every call
type Generator interface {
	Generate() (*model.Wallet, error)
}

// Sink persists generated entries
type Sink interface {
	Append(entry *model.Entry) error
	Path() string
}

// Options toggles optional output
type Options struct {
	ShowPublicKey bool
	// QR renders an address as a terminal QR code, nil disables it
	QR func(address string) (string, error)
	// Now stamps entries, time.Now when nil
	Now func() time.Time
}

// Runner reads the requested count and drives generation, display and persistence
type Runner struct {
	generator Generator
	sink      Sink
	prompter  Prompter
	formatter *display.Formatter
	printer   *display.Printer
	log       zerolog.Logger
	opts      Options
}

// NewRunner creates a runner from its collaborators
func NewRunner(
	generator Generator,
	sink Sink,
	prompter Prompter,
	formatter *display.Formatter,
	printer *display.Printer,
	log zerolog.Logger,
	opts Options,
) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		generator: generator,
		sink:      sink,
		prompter:  prompter,
		formatter: formatter,
		printer:   printer,
		log:       log,
		opts:      opts,
	}
}

// ParseCount parses the operator's answer as a positive base-10 integer
func ParseCount(input string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}
	if count <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidInput, count)
	}
	return count, nil
}

// Run asks for the number of wallets and generates them one by one.
// Generation and write failures are logged and do not stop the loop.
// A cancelled ctx stops the loop between wallets; the summary covers what was done.
func (r *Runner) Run(ctx context.Context) (summary *model.Summary, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			summary, err = nil, &UnexpectedError{Value: rec, Stack: debug.Stack()}
		}
	}()

	input, err := r.prompter.Prompt(PromptText)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	count, err := ParseCount(input)
	if err != nil {
		r.printer.Error("Invalid input. Please enter a positive number.")
		return nil, err
	}

	r.printer.Info("\nGenerating %d wallet(s)...", count)

	summary = &model.Summary{Requested: count}
	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			r.log.Warn().Int("done", i-1).Int("requested", count).Msg("Generation interrupted")
			r.printSummary(summary)
			return summary, err
		}
		summary.Add(r.step(i))
	}

	r.printSummary(summary)
	return summary, nil
}

// step generates, displays and saves wallet #seq
func (r *Runner) step(seq int) model.Result {
	wallet, err := r.generator.Generate()
	if err == nil && (wallet == nil || wallet.Address == "") {
		err = ErrMissingAddress
	}
	if err != nil {
		r.log.Warn().Err(err).Int("wallet", seq).Msgf("Failed to generate wallet #%d", seq)
		return model.Result{Sequence: seq, Status: model.StatusSkipped, Err: err}
	}

	entry := &model.Entry{
		Wallet:    *wallet,
		Sequence:  seq,
		Timestamp: r.opts.Now(),
	}

	r.printer.Box(r.formatter.Box(entry, r.opts.ShowPublicKey))

	if r.opts.QR != nil {
		qr, err := r.opts.QR(entry.Address)
		if err != nil {
			r.log.Warn().Err(err).Int("wallet", seq).Msg("Failed to render QR code")
		} else {
			r.printer.Plain(qr + "\n")
		}
	}

	if err := r.sink.Append(entry); err != nil {
		r.log.Error().Err(err).Str("file", r.sink.Path()).Int("wallet", seq).Msg("Error writing to file")
		return model.Result{Sequence: seq, Status: model.StatusNotSaved, Err: err}
	}

	return model.Result{Sequence: seq, Status: model.StatusSaved}
}

func (r *Runner) printSummary(s *model.Summary) {
	if s.Generated == 0 {
		r.printer.Warn("\nNo wallets were generated.")
		return
	}

	r.printer.Success("\n✅ Success! %d wallet(s) generated.", s.Generated)
	if s.Saved > 0 {
		r.printer.Notice("Wallet details (Address, Private Key, Mnemonic) have been saved to %s.", r.sink.Path())
	}
	if s.Skipped > 0 {
		r.printer.Warn("%d wallet(s) could not be generated.", s.Skipped)
	}
	if s.Unsaved() > 0 {
		r.printer.Error("%d wallet(s) could not be saved to %s.", s.Unsaved(), r.sink.Path())
	}
	r.printer.Warn("\n⚠️ IMPORTANT: Securely store your Private Keys and Mnemonic Phrases. Do not share them!")
}
