package main

import "context"
import "fmt"
import "os"
import "os/signal"
import "runtime"
import "syscall"

import cli "github.com/urfave/cli/v3"
import "go.uber.org/zap"

import "github.com/sesvxace/book/config"
import "github.com/sesvxace/book/internal/state"

const appName = "bookview"

// initializeAppContext prepares the application context after the
// command line has been parsed and before the command runs.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := state.EnvFromContext(ctx)

	var err error
	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	logger, err := env.Cfg.Logging.Prepare(appName)
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.Log = logger
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	env.RestoreStdLog()
	return nil
}

// Errors are regular errors returned by the commands, reported
// here while the log is still open.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	env.Log.Error("Program ended with error", zap.Error(err))
	errWasHandled = true
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "pages through book files, exports them and measures their layout",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug messages to the console"},
		},
		Commands: []*cli.Command{
			{
				Name:         "show",
				Usage:        "Shows a book in a window (left/right turn pages, up/down scroll, escape quits)",
				OnUsageError: usageErrorHandler,
				Action:       showBook,
				ArgsUsage:    "BOOK",
			},
			{
				Name:         "export",
				Usage:        "Exports every page of a book as PNG images and/or a PDF document",
				OnUsageError: usageErrorHandler,
				Action:       exportBook,
				ArgsUsage:    "BOOK",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "png", Usage: "write one PNG image per page into `DIR`"},
					&cli.StringFlag{Name: "pdf", Usage: "write all pages into a PDF `FILE`"},
					&cli.FloatFlag{Name: "scale", Value: 1, Usage: "PNG scaling `FACTOR`"},
					&cli.BoolFlag{Name: "full", Usage: "export whole pages instead of the visible window"},
				},
			},
			{
				Name:         "measure",
				Usage:        "Prints the rows and content height of every page",
				OnUsageError: usageErrorHandler,
				Action:       measureBook,
				ArgsUsage:    "BOOK",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var data []byte
	if cmd.Bool("default") {
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	return writeOutput(cmd.Args().Get(0), data)
}
