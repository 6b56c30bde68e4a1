package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Egor213/TerraTrack/internal/plugin"
	"github.com/Egor213/TerraTrack/internal/plugin/erroragg"
	errorsUtils "github.com/Egor213/TerraTrack/pkg/errors"
	"github.com/Egor213/TerraTrack/pkg/grpcserver"
	"github.com/Egor213/TerraTrack/pkg/logger"
	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type config struct {
	Port            string        `env:"PLUGIN_PORT" env-default:"50051"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"3s"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return config{}, errorsUtils.WrapPathErr(err)
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd uses cfg as flag defaults; flags override the environment.
func newRootCmd(cfg config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "erroraggregator",
		Short:         "gRPC log plugin that groups error records by type",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetupLogger(cfg.LogLevel)
			return serve(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	cmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful stop deadline")
	return cmd
}

func serve(cfg config) error {
	srv, err := grpcserver.New(
		plugin.Register(erroragg.New()),
		grpcserver.WithPort(cfg.Port),
		grpcserver.WithShutdownTimeout(cfg.ShutdownTimeout),
	)
	if err != nil {
		log.Error(err)
		return err
	}
	log.WithField("addr", srv.Addr().String()).Info("Error aggregator plugin started")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("erroraggregator - signal: " + s.String())
	case err := <-srv.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	srv.Shutdown()
	return nil
}
