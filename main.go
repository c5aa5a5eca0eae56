package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/tictactoe-threemark/internal"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/config"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/console"
)

const releaseVersion = "1.0.0"

type flags struct {
	configPath string
	port       string
	logLevel   string
}

// main - is the entry point of the application. It loads .env, parses the command line and runs the chosen command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	_ = godotenv.Load()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func newRootCmd() *cobra.Command {
	opts := &flags{}

	serve := func(cmd *cobra.Command, _ []string) error {
		conf := initConfig(opts)
		logger := initLogger(conf)

		return app.RunApp(cmd.Context(), logger, conf)
	}

	root := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Tic-tac-toe where each player keeps at most three markers on the board.",
		Args:          cobra.NoArgs,
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          serve,
	}

	pfs := root.PersistentFlags()
	pfs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	pfs.StringVarP(&opts.configPath, "config", "c", "./config.yml", "path to the yaml config, env only when missing")
	pfs.StringVarP(&opts.port, "port", "p", "", "HTTP port, overrides the config (env: HTTP_PORT)")
	pfs.StringVar(&opts.logLevel, "log-level", "", "debug or info, overrides the config (env: LOG_LEVEL)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket server",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})

	root.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in this terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return console.New(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	})

	root.CompletionOptions.HiddenDefaultCmd = true
	root.SetVersionTemplate("tictactoe v{{.Version}}\n")

	return root
}

// initialize config.
func initConfig(opts *flags) *config.Config {
	conf, err := config.Load(opts.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		conf, err = config.LoadEnv()
	}
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	if opts.port != "" {
		conf.HTTPPort = opts.port
	}
	if opts.logLevel != "" {
		conf.LogLevel = opts.logLevel
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
