package main

import (
	"io"
	"os"

	"github.com/mavenreposs/component-error/errorbag"
	"github.com/mavenreposs/component-error/internal/config"
	"github.com/mavenreposs/component-error/internal/errors"
	"github.com/mavenreposs/component-error/internal/logger"
	"github.com/spf13/cobra"
)

const (
	exitCollected = 1
	exitConfig    = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command. Failures before the configuration is known are
// logged as JSON to stderr; everything after goes where the config says.
func execute(args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)
	logger.SetLogLevel(logger.WarnLevel)

	code := 0
	cmd := newRootCommand(&code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		bag := errors.ToBag(errors.New().Wrap(errors.ErrInvalidArgument, err))
		logger.ErrorWithBag(bag).Msg("invalid command line")
		return exitConfig
	}
	return code
}

func newRootCommand(exitCode *int) *cobra.Command {
	var data []string

	cmd := &cobra.Command{
		Use:   "errorbag [flags] CODE=MESSAGE ...",
		Short: "Collect error codes and messages into a bag and log it",
		Long: `errorbag adds each CODE=MESSAGE argument to an error bag in order,
attaches --data CODE=VALUE payloads and logs the result.
Numeric codes are stored in decimal form, so 042 and 42 are the same code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				var coded errors.Error
				if errors.As(err, &coded) {
					logger.ErrorWithCode(coded).Msg("failed to load configuration")
				} else {
					logger.ErrorWithBag(errors.ToBag(err)).Msg("failed to load configuration")
				}
				*exitCode = exitConfig
				return nil
			}

			initLogger(cfg, cmd.OutOrStdout())

			if invalid := cfg.Validate(); !invalid.Empty() {
				logger.ErrorWithBag(invalid).Msg("invalid configuration")
				*exitCode = exitConfig
				return nil
			}

			bag, rejected := collect(args, data)
			if !rejected.Empty() {
				logger.ErrorWithBag(rejected).Msg("rejected arguments")
				*exitCode = exitConfig
				return nil
			}

			report(bag)
			if cfg.Strict && !bag.Empty() {
				*exitCode = exitCollected
			}
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringArrayVar(&data, "data", nil, "Attach data to a code (CODE=VALUE, repeatable)")

	return cmd
}

func initLogger(cfg *config.Config, out io.Writer) {
	if cfg.LogFormat == config.LogFormatJSON {
		logger.SetOutput(out)
	} else {
		logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	}
	logger.SetLogLevel(logLevel(cfg))

	logger.Debug().Str("log_level", string(cfg.LogLevel)).Msg("Config loaded")
}

// logLevel applies --debug, then --verbose, then log_level, in that order
// of precedence, falling back to warnings.
func logLevel(cfg *config.Config) logger.LogLevel {
	switch {
	case cfg.Debug:
		return logger.DebugLevel
	case cfg.Verbose:
		return logger.InfoLevel
	}

	if level, ok := logger.ParseLevel(string(cfg.LogLevel)); ok {
		return level
	}
	return logger.WarnLevel
}

func report(bag *errorbag.Bag) {
	if bag.Empty() {
		logger.Info().Msg("no errors")
		return
	}

	logger.ErrorWithBag(bag).Int("count", bag.Len()).Msg("errors collected")
}
