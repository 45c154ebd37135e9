// Generates random EVM wallets, prints them and appends them to a text file.
// Usage: go run ./cmd/evm-wallet
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/AlexZinkM/evm-wallet/evm"
	"github.com/AlexZinkM/evm-wallet/internal/cli"
	"github.com/AlexZinkM/evm-wallet/internal/config"
	"github.com/AlexZinkM/evm-wallet/internal/display"
	"github.com/AlexZinkM/evm-wallet/internal/storage"
)

// Exit codes
const (
	exitOK          = 0
	exitError       = 1
	exitInvalidArgs = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if err := config.Init(); err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return exitError
	}
	cfg := config.Get()
	zerolog.SetGlobalLevel(cfg.Level())

	generator, err := evm.NewGenerator(evm.Options{
		EntropyBits: cfg.MnemonicBits,
		Language:    cfg.MnemonicLanguage,
		Path:        cfg.DerivationPath,
	})
	if err != nil {
		log.Error().Err(err).Strs("languages", evm.Languages()).Msg("Failed to create wallet generator")
		return exitError
	}

	sink, err := storage.NewFileSink(cfg.OutputFile)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open output file")
		return exitError
	}

	// color.NoColor already covers NO_COLOR, TERM=dumb and non-terminal stdout
	printer := display.NewPrinter(color.Output, !cfg.NoColor && !color.NoColor)
	printer.Banner()

	var prompter cli.Prompter
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompter = cli.NewTerminalPrompter()
	} else {
		prompter = cli.NewLinePrompter(os.Stdin, printer.Prompt)
	}

	opts := cli.Options{ShowPublicKey: cfg.ShowPublicKey}
	if cfg.ShowQR {
		opts.QR = evm.AddressQR
	}

	log.Debug().
		Str("file", sink.Path()).
		Str("path", generator.Path()).
		Int("bits", cfg.MnemonicBits).
		Str("language", cfg.MnemonicLanguage).
		Msg("Starting wallet generator")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := cli.NewRunner(
		generator,
		sink,
		prompter,
		display.NewFormatter(cfg.BoxWidth),
		printer,
		log.Logger,
		opts,
	)

	_, err = runner.Run(ctx)
	return exitCode(err)
}

// exitCode maps the outcome of a run to the process exit status
func exitCode(err error) int {
	var unexpected *cli.UnexpectedError

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrInvalidInput):
		return exitInvalidArgs
	case errors.Is(err, cli.ErrAborted), errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.As(err, &unexpected):
		log.Error().Err(err).Str("stack", string(unexpected.Stack)).Msg("An unexpected error occurred during wallet generation")
		return exitError
	default:
		log.Error().Err(err).Msg("An unexpected error occurred during wallet generation")
		return exitError
	}
}
