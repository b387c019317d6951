package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/clients/frankfurter"
	"max.ks1230/fx-converter/internal/clients/tg"
	"max.ks1230/fx-converter/internal/config"
	"max.ks1230/fx-converter/internal/logger"
	"max.ks1230/fx-converter/internal/metrics"
	"max.ks1230/fx-converter/internal/model/messages"
	"max.ks1230/fx-converter/internal/model/storage"
	"max.ks1230/fx-converter/internal/tracing"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the YAML config file")
	flag.Parse()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.New(*configPath)
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	go func() {
		if err := metrics.Serve(ctx, conf.Metrics()); err != nil {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()

	rates, err := frankfurter.New(conf.Frankfurter())
	if err != nil {
		logger.Fatal("failed to init rates client", zap.Error(err))
	}

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	sessions := storage.NewInMemStorage()
	msgService := messages.NewService(client, sessions, rates, conf.App())

	client.ListenUpdates(ctx, msgService)
}
