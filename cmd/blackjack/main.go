package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/console"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/table"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
)

var version = "dev"

// CLI flags override the environment when set
type CLI struct {
	Decks    int    `short:"d" help:"Number of 52-card packs in the shoe (1-8). Asked at the table when unset."`
	Players  int    `short:"p" help:"Number of players (1-8). Asked at the table when unset."`
	Seed     int64  `help:"Seed for the shuffle, for repeatable games."`
	Storage  string `enum:",memory,sqlite" default:"" help:"Round history backend for this session (memory or sqlite)."`
	Rules    string `type:"path" help:"HCL file with house rules."`
	EnvFile  string `name:"env-file" type:"path" help:"Environment file to load." default:".env"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)."`
	LogFile  string `name:"log-file" type:"path" help:"Write logs to this file instead of stderr."`
	NoPace   bool   `name:"no-pace" help:"Skip the pauses between dealt cards."`
	History  int    `default:"-1" help:"Recent rounds listed per player at the end (0-20). Defaults to BLACKJACK_HISTORY or 3."`

	Version kong.VersionFlag `help:"Show version and exit."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("A console BlackJack table for up to 8 players."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := run(context.Background(), &cli, os.Stdin, os.Stdout)
	if errors.Is(err, console.ErrInputClosed) {
		fmt.Fprintln(os.Stdout, "\nGoodbye.")
		return
	}
	ctx.FatalIfErrorf(err)
}

func run(ctx context.Context, cli *CLI, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(cli.EnvFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	rules, err := config.LoadTableRules(cfg.RulesFile)
	if err != nil {
		return fmt.Errorf("failed to load table rules: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, err := newRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	opts := console.Options{
		Clock:        quartz.NewReal(),
		HideHoleCard: rules.HideHoleCard,
		Logger:       logger,
	}
	if cfg.Pace {
		opts.Pace = rules.Pace
		opts.ShortPace = rules.ShortPace
	}

	session := table.NewSession(
		console.New(in, out, opts),
		statistics.NewService(repo, logger),
		table.Config{
			Decks:          cfg.Decks,
			Players:        cfg.Players,
			DealerStandsOn: rules.DealerStandsOn,
			Rand:           rng,
			History:        cfg.History,
		},
		logger,
	)
	return session.Run(ctx)
}

// apply copies every flag that was set onto cfg
func (cli *CLI) apply(cfg *config.Config) {
	if cli.Decks != 0 {
		cfg.Decks = cli.Decks
	}
	if cli.Players != 0 {
		cfg.Players = cli.Players
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}
	if cli.Storage != "" {
		cfg.Storage = cli.Storage
	}
	if cli.Rules != "" {
		cfg.RulesFile = cli.Rules
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.LogFile = cli.LogFile
	}
	if cli.NoPace {
		cfg.Pace = false
	}
	if cli.History >= 0 {
		cfg.History = cli.History
	}
}

func newLogger(cfg *config.Config) (*logging.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if cfg.LogFile == "" {
		return logging.New(os.Stderr, level, "blackjack"), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(f, level, "blackjack"), func() { f.Close() }, nil
}

func newRepository(ctx context.Context, cfg *config.Config, logger *logging.Logger) (game.Repository, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		return game.NewSQLiteRepository(ctx, game.InMemoryDSN, logger)
	default:
		return game.NewMemoryRepository(), nil
	}
}
