package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tuannh982/as-completed/config"
	"github.com/tuannh982/as-completed/delay"
	"github.com/tuannh982/as-completed/measure"

	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := measure.Time(ctx, cfg.WaitN.Count, func(ctx context.Context, n int) error {
		delays, err := delay.WaitN(ctx, n, cfg.WaitN.MaxDelay)
		if err != nil {
			return err
		}
		log.WithField("delays", delays).Info("wait_n finished in completion order")
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("report", report).Info("wait_n runtime")

	c := cfg.Comprehension
	elapsed, err := measure.Parallel(ctx, c.Batches, func(ctx context.Context) error {
		values, err := delay.Comprehension(ctx, c.Count, c.Interval, c.MaxValue)
		if err != nil {
			return err
		}
		log.WithField("values", len(values)).Debug("comprehension finished")
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"batches": c.Batches,
		"elapsed": elapsed.Round(time.Millisecond),
	}).Info("parallel comprehensions runtime")
}
