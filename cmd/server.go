package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"redactsync/internal/claim"
	"redactsync/internal/config"
	"redactsync/internal/core"
	"redactsync/internal/db"
	"redactsync/internal/decrypt"
	"redactsync/internal/ethereum"
	"redactsync/internal/events"
	"redactsync/internal/http/handler"
	"redactsync/internal/http/handler/middleware"
	"redactsync/internal/http/payload"
	"redactsync/internal/http/server"
	"redactsync/internal/oracle"
	"redactsync/internal/repository"
	"redactsync/internal/scheduler"
	"redactsync/internal/storage"
	"redactsync/internal/token"
	"redactsync/pkg/jwt"
	"redactsync/pkg/log"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var Serve = cli.Command{
	Action: serve,
	Name:   "serve",
	Usage:  "runs the sync daemon and its HTTP API",
}

func serve(_ *cli.Context) error {
	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger("redactsync", log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	chains, err := cfg.Chains()
	if err != nil {
		logger.Errorw("failed to load chains", "error", err)
		return err
	}

	byChain := make(map[uint64]*ethereum.Reader, len(chains))
	registries := make(map[uint64]common.Address, len(chains))
	for _, chain := range chains {
		client, err := ethclient.Dial(chain.RPCURL)
		if err != nil {
			logger.Errorw("node connection failed", "error", err, "chain", chain.ID)
			return err
		}
		defer client.Close()

		byChain[chain.ID] = ethereum.NewReader(client, chain.Multicall, cfg.BatchSize)
		if chain.Registry != (common.Address{}) {
			registries[chain.ID] = chain.Registry
		}
		logger.Infow("chain configured", "chain", chain.ID, "name", chain.Name)
	}
	readers := ethereum.NewReaders(byChain)

	kv, err := openKV(cfg.StorageBackend, cfg.LevelDBPath, cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to open storage", "error", err, "backend", cfg.StorageBackend)
		return err
	}
	snapshots := storage.NewSnapshots(kv)
	defer snapshots.Close()

	oracleClient := oracle.NewClient(cfg.OracleURL, cfg.OracleTimeout)
	decryptions := decrypt.NewCache(logger, oracleClient, cfg.DecryptWindow)

	var catalog token.Catalog
	if cfg.CatalogURL != "" {
		catalog = token.NewHTTPCatalog(cfg.CatalogURL, cfg.CatalogTimeout)
	}
	tokens := token.NewStore(logger, readers, decryptions, catalog, registries, cfg.BatchSize)
	claims := claim.NewLedger(logger, readers)

	engine := core.NewEngine(logger, tokens, claims, decryptions, snapshots)
	defer engine.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := engine.Restore(ctx); err != nil {
		// a snapshot written by an incompatible version is dropped, not fatal
		logger.Errorw("failed to restore state, starting empty", "error", err)
	}

	gate := scheduler.NewGate(cfg.ConfirmationTTL)
	sched := scheduler.NewScheduler(logger, engine, gate, scheduler.Config{
		BalanceInterval:  cfg.BalanceInterval,
		ClaimInterval:    cfg.ClaimInterval,
		ValidateInterval: cfg.ValidateInterval,
	})

	listener := events.NewListener(logger, engine, gate)
	if cfg.NATSURL != "" {
		conn, err := events.Connect(logger, cfg.NATSURL)
		if err != nil {
			logger.Errorw("failed to connect to nats", "error", err)
			return err
		}
		defer conn.Drain()

		if err := listener.Subscribe(ctx, conn, cfg.NATSSubject); err != nil {
			logger.Errorw("failed to subscribe to transaction notices", "error", err)
			return err
		}
	}
	defer listener.Close()

	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))
	auth := middleware.NewAuthMiddleware(logger, jwtService)

	syncHlr := handler.NewSyncHandler(
		logger,
		payload.Decoder{},
		engine,
		listener,
		oracleClient)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	registerRoutes(mux, auth, syncHlr)
	mux.Handle("GET /metrics", promhttp.Handler())

	sched.Start(ctx)
	defer sched.Stop()

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(logger, srv)
}

// registerRoutes mounts the sync API. Every route that exposes balances or
// decrypted values needs the read scope.
func registerRoutes(mux *http.ServeMux, auth *middleware.AuthMiddleware, h *handler.SyncHandler) {
	mux.HandleFunc(handler.PostConfirmation, auth.Authorize(jwt.ScopeWrite, h.HandleConfirmation))
	mux.HandleFunc(handler.PostSession, auth.Authorize(jwt.ScopeWrite, h.HandleSession))
	mux.HandleFunc(handler.GetSnapshot, auth.Authorize(jwt.ScopeRead, h.HandleSnapshot))
	mux.HandleFunc(handler.PostDecrypt, auth.Authorize(jwt.ScopeRead, h.HandleDecrypt))
	mux.HandleFunc(handler.GetSearch, auth.Authorize(jwt.ScopeRead, h.HandleSearch))
	mux.HandleFunc(handler.PostArbitrary, auth.Authorize(jwt.ScopeWrite, h.HandleAddArbitrary))
	mux.HandleFunc(handler.DeleteArbitrary, auth.Authorize(jwt.ScopeWrite, h.HandleRemoveArbitrary))
}

func openKV(backend, levelDBPath, dsn string) (storage.KV, error) {
	switch backend {
	case config.BackendPostgres:
		pg, err := db.NewPostgresDB(dsn)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		repo := repository.NewKVRepository(pg)
		if err := repo.Migrate(); err != nil {
			return nil, errors.Join(fmt.Errorf("migrate kv table: %w", err), repo.Close())
		}
		return repo, nil
	case config.BackendMemory:
		return storage.NewMemory(), nil
	default:
		ldb, err := storage.NewLevelDB(levelDBPath)
		if err != nil {
			return nil, err
		}
		return ldb, nil
	}
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutting down", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
