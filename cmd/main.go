package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/jny0444/crowdfund/internal/adapter/memory"
	"github.com/jny0444/crowdfund/internal/adapter/postgres"
	"github.com/jny0444/crowdfund/internal/adapter/usecase"
	"github.com/jny0444/crowdfund/internal/config"
	"github.com/jny0444/crowdfund/internal/core/port"
	"github.com/jny0444/crowdfund/internal/db"
)

var envFileFlag = &cli.StringFlag{
	Name:  "env-file",
	Usage: "dotenv file loaded before the environment is parsed",
	Value: ".env",
}

// main is the entry point of the crowdfund ledger. Configuration comes from
// environment variables (optionally seeded from a dotenv file); the
// subcommands share it.
func main() {
	app := &cli.App{
		Name:  "crowdfund",
		Usage: "escrowed crowdfunding campaign ledger",
		Flags: []cli.Flag{envFileFlag},
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			seedCommand,
			tokenCommand,
			rejectCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// env is the state shared by all subcommands.
type env struct {
	cfg    config.Config
	logger *slog.Logger
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String(envFileFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &env{cfg: cfg, logger: cfg.Log.New(os.Stdout)}, nil
}

// openPool connects to postgres, applying migrations first when configured.
func (e *env) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if e.cfg.Psql.RunMigrations {
		if err := db.Migrate(e.cfg.Psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		e.logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, e.cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return pool, nil
}

// openRepo returns the configured ledger store and a function releasing it.
func (e *env) openRepo(ctx context.Context) (port.LedgerRepository, func(), error) {
	switch e.cfg.Store {
	case "memory":
		e.logger.Warn("using in-memory ledger store; state is lost on exit")
		return memory.NewLedgerRepository(), func() {}, nil
	case "postgres":
		pool, err := e.openPool(ctx)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewLedgerRepository(pool, e.cfg.Psql.TxRetries), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", e.cfg.Store)
	}
}

func (e *env) newLedger(repo port.LedgerRepository, opts ...usecase.Option) (*usecase.Ledger, error) {
	refundMode, err := usecase.ParseRefundMode(e.cfg.Ledger.RefundMode)
	if err != nil {
		return nil, err
	}
	deadlinePolicy, err := usecase.ParseDeadlinePolicy(e.cfg.Ledger.DeadlinePolicy)
	if err != nil {
		return nil, err
	}
	opts = append([]usecase.Option{
		usecase.WithRefundMode(refundMode),
		usecase.WithDeadlinePolicy(deadlinePolicy),
		usecase.WithFaucet(e.cfg.Ledger.Faucet),
	}, opts...)
	return usecase.NewLedger(repo, opts...), nil
}
