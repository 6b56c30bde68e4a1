package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/TerraTrack/internal/broker"
	kafkabroker "github.com/Egor213/TerraTrack/internal/broker/kafka"
	"github.com/Egor213/TerraTrack/internal/config"
	httpv1 "github.com/Egor213/TerraTrack/internal/controller/http/v1"
	"github.com/Egor213/TerraTrack/internal/metrics"
	"github.com/Egor213/TerraTrack/internal/plugin"
	"github.com/Egor213/TerraTrack/internal/repo"
	"github.com/Egor213/TerraTrack/internal/service"
	errorsUtils "github.com/Egor213/TerraTrack/pkg/errors"
	"github.com/Egor213/TerraTrack/pkg/httpserver"
	"github.com/Egor213/TerraTrack/pkg/logger"
	"github.com/Egor213/TerraTrack/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL, cfg.PG.MigrationsPath)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Broker
	var producer broker.Producer = broker.NopProducer{}
	if cfg.Kafka.Enabled {
		log.WithField("brokers", cfg.Kafka.Brokers).Info("Kafka producer enabled")
		kp := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer kp.Close()
		producer = kp
	}

	// Services
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Transactor:     pg.TrManager,
		Counters:       metrics.New(),
		BrokerProducer: producer,
		PluginClient:   plugin.NewClient(plugin.WithTimeout(cfg.Plugins.Timeout)),
	}
	services := service.NewServices(deps)

	for _, p := range cfg.Plugins.Endpoints {
		if err := services.Plugin.Register(p.Name, p.Address); err != nil {
			log.WithField("plugin", p.Name).Warn(errorsUtils.WrapPathErr(err))
		}
	}

	// API server
	log.Infof("Starting API server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	httpv1.ConfigureRouter(apiHandler, services, cfg.Upload.MaxBytes, metrics.Middleware())
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
