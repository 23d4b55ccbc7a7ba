package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/socialharmony/backend/internal/domain"
	"github.com/socialharmony/backend/pkg/kafka"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startSubscriber(*cli.Context) error {
	cfg := xcontext.Configs(s.ctx)
	if !cfg.Kafka.Enabled() {
		return cli.Exit("kafka address is not configured", 1)
	}

	s.loadStore()
	s.loadEthClient()
	s.loadDomains()

	subscriber, err := kafka.NewSubscriber(
		cfg.Kafka.ClientID,
		[]string{cfg.Kafka.Addr},
		[]string{cfg.Kafka.Topic},
		domain.NewActivityHandler(s.gameDomain),
	)
	if err != nil {
		return err
	}

	go func() {
		termSignal := make(chan os.Signal, 1)
		signal.Notify(termSignal, syscall.SIGINT, syscall.SIGTERM)
		sig := <-termSignal
		xcontext.Logger(s.ctx).Infof("Got a signal of %s", sig.String())
		if err := subscriber.Stop(s.ctx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot stop subscriber: %v", err)
		}
	}()

	xcontext.Logger(s.ctx).Infof("Started game activity subscriber on topic %s", cfg.Kafka.Topic)
	return subscriber.Subscribe(s.ctx)
}
