package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teraseg/geoinsight/internal/config"
	"github.com/teraseg/geoinsight/internal/infrastructure/boundary"
	"github.com/teraseg/geoinsight/internal/infrastructure/bps"
	"github.com/teraseg/geoinsight/internal/infrastructure/database/postgres"
	"github.com/teraseg/geoinsight/internal/infrastructure/database/redis"
	"github.com/teraseg/geoinsight/internal/infrastructure/messaging/kafka"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/metrics"
	httpiface "github.com/teraseg/geoinsight/internal/interfaces/http"
	"github.com/teraseg/geoinsight/internal/interfaces/http/handlers"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			return RunServer(cmd.Context(), cfg)
		},
	}
}

// RunServer wires the full dependency graph and serves until the context is
// canceled or a termination signal arrives.  The Redis cache and the Kafka
// producer are optional; their absence degrades the service, never blocks it.
func RunServer(ctx context.Context, cfg *config.Config) error {
	logCfg := logging.LogConfig{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if cfg.Log.Output != "" {
		logCfg.OutputPaths = []string{cfg.Log.Output}
	}
	log, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cache *redis.Cache
	probes := map[string]handlers.Pinger{}
	redisClient, err := redis.NewClient(cfg.Redis, log)
	if err != nil {
		log.Warn("redis unavailable, boundary caching disabled", logging.Err(err))
	} else {
		defer redisClient.Close()
		cache = redis.NewCache(redisClient, cfg.Redis.KeyPrefix, cfg.Redis.DefaultTTL)
		probes["redis"] = redisClient
	}

	dsn := postgres.BuildDSN(cfg.Database)
	if err := postgres.RunMigrations(dsn, cfg.Database.MigrationPath); err != nil {
		return err
	}
	conn, err := postgres.NewConnection(cfg.Database, log)
	if err != nil {
		return err
	}
	defer conn.Close()
	probes["postgres"] = conn

	producer := kafka.NewProducer(cfg.Kafka, log)
	defer producer.Close()

	m := metrics.New()
	router := httpiface.NewRouter(httpiface.RouterDeps{
		Mode:        cfg.Server.Mode,
		Version:     Version,
		Boundaries:  boundary.NewStore(cfg.Boundary, cache, log),
		Indicators:  bps.NewClient(cfg.BPS, log),
		Results:     postgres.NewResultStore(conn, log),
		ResultsCRUD: postgres.NewResultStore(conn, log),
		Events:      producer,
		Probes:      probes,
		Metrics:     m,
		Log:         log,
	})

	server := httpiface.NewServer(cfg.Server, router, log)
	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return server.Stop(context.Background())
	}
}
