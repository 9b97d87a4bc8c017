package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	httpadapter "github.com/jny0444/crowdfund/internal/adapter/http"
	"github.com/jny0444/crowdfund/internal/adapter/postgres"
	"github.com/jny0444/crowdfund/internal/adapter/rabbitmq"
	"github.com/jny0444/crowdfund/internal/adapter/relay"
	"github.com/jny0444/crowdfund/internal/adapter/usecase"
	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
	"github.com/jny0444/crowdfund/internal/db"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "run the HTTP API and the event relay",
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		return e.serve(c.Context)
	},
}

// serve starts the HTTP server and the outbox relay. On receiving a
// termination signal it gracefully shuts both down.
func (e *env) serve(parent context.Context) error {
	cfg, logger := e.cfg, e.logger

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Env,
			EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
		})
		if err != nil {
			return fmt.Errorf("sentry init: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
		logger.Info("sentry initialized", slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := e.openRepo(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	ledger, err := e.newLedger(repo)
	if err != nil {
		return err
	}

	var pub port.EventPublisher = relay.NewLogPublisher(logger)
	if cfg.RabbitMQ.URL != "" {
		rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, logger)
		if err != nil {
			return err
		}
		defer rmq.Close()
		pub = rmq
	}
	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		relay.New(repo, pub, cfg.Relay.Interval, cfg.Relay.BatchSize, logger).Run(ctx)
	}()

	if cfg.Auth.Secret == "change-me" {
		logger.Warn("AUTH_JWT_SECRET is the default value")
	}
	handler := httpadapter.NewHandler(ledger, httpadapter.NewAuthenticator(cfg.Auth), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store),
			slog.String("refund_mode", cfg.Ledger.RefundMode),
			slog.String("deadline_policy", cfg.Ledger.DeadlinePolicy),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	<-relayDone
	return err
}

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "apply database migrations",
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		if err = db.Migrate(e.cfg.Psql.Addr.String()); err != nil {
			return err
		}
		e.logger.Info("migrations applied successfully")
		return nil
	},
}

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "fund demo accounts and open demo campaigns",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "campaigns", Usage: "number of campaigns to open", Value: 5},
	},
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		repo, closeRepo, err := e.openRepo(c.Context)
		if err != nil {
			return err
		}
		defer closeRepo()

		ledger, err := e.newLedger(repo, usecase.WithFaucet(true))
		if err != nil {
			return err
		}
		accounts, err := db.Seed(c.Context, ledger, c.Int("campaigns"))
		if err != nil {
			return err
		}
		for _, addr := range accounts {
			e.logger.Info("seeded account", slog.String("address", addr.String()))
		}
		return nil
	},
}

var tokenCommand = &cli.Command{
	Name:  "token",
	Usage: "issue a bearer token for an address",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "address", Usage: "caller address (0x...)", Required: true},
	},
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		addr, err := domain.ParseAddress(c.String("address"))
		if err != nil {
			return err
		}
		token, err := httpadapter.NewAuthenticator(e.cfg.Auth).Issue(addr)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, token)
		return nil
	},
}

var rejectCommand = &cli.Command{
	Name:  "reject-transfers",
	Usage: "make an account refuse (or accept again) incoming payouts and refunds",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "address", Usage: "account address (0x...)", Required: true},
		&cli.BoolFlag{Name: "off", Usage: "accept transfers again"},
	},
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		if e.cfg.Store != "postgres" {
			return errors.New("reject-transfers needs the postgres store")
		}
		addr, err := domain.ParseAddress(c.String("address"))
		if err != nil {
			return err
		}
		pool, err := e.openPool(c.Context)
		if err != nil {
			return err
		}
		defer pool.Close()

		rejects := !c.Bool("off")
		if err = postgres.NewLedgerRepository(pool, e.cfg.Psql.TxRetries).SetRejectsTransfers(c.Context, addr, rejects); err != nil {
			return err
		}
		e.logger.Info("account updated", slog.String("address", addr.String()), slog.Bool("rejects_transfers", rejects))
		return nil
	},
}
