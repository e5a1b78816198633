package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mhabedinpour/pcm-audio-stub/pkg/audio"
	circuitbreaker "github.com/mhabedinpour/pcm-audio-stub/pkg/circuit-breaker"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/config"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/forwarder"
	retryhandler "github.com/mhabedinpour/pcm-audio-stub/pkg/retry-handler"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/streamer"
	"github.com/mhabedinpour/pcm-audio-stub/pkg/writer"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	ServerTimeout   = 5 * time.Second
	ShutdownTimeout = 15 * time.Second
	BreakerName     = "Ingest"

	StdinStopTimeout = time.Second
)

func newRetryHandler(cfg config.RetryConfig) retryhandler.RetryHandler[*audio.Clip] {
	if cfg.Exponential {
		return retryhandler.NewExponentialRetryHandler[*audio.Clip](cfg.WaitTime, cfg.MaxWait, cfg.MaxAttempts)
	}

	return retryhandler.NewConstRetryHandler[*audio.Clip](cfg.WaitTime, cfg.MaxAttempts)
}

// drainResults logs the outcome of every clip until the queue is stopped.
func drainResults(queue *forwarder.Queue[*audio.Clip, []byte], logger logrus.FieldLogger) {
	successes, errs := queue.Successes(), queue.Errors()

	for successes != nil || errs != nil {
		select {
		case delivery, ok := <-successes:
			if !ok {
				successes = nil

				continue
			}

			logger.WithFields(logrus.Fields{
				"clip":     delivery.Item.ID.String(),
				"file":     delivery.Item.Name,
				"bytes":    delivery.Item.Size(),
				"attempts": delivery.Attempts,
				"reply":    string(delivery.Result),
			}).Info("forwarded audio")
		case failure, ok := <-errs:
			if !ok {
				errs = nil

				continue
			}

			logger.WithFields(logrus.Fields{
				"clip":     failure.Item.ID.String(),
				"file":     failure.Item.Name,
				"attempts": failure.Attempts,
			}).WithError(failure.Err).Error("could not forward audio")
		}
	}
}

// feedStdin plays every file name read from stdin until stdin is closed.
func feedStdin(s *streamer.Streamer, logger logrus.FieldLogger) (func(), error) {
	stdin, cancel, err := streamer.OpenStdin()
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		for name := range streamer.ReadLines(stdin) {
			if _, err := s.PlayFile(name); err != nil {
				logger.WithError(err).WithField("file", name).Warn("could not play file")
			}
		}
	}()

	return func() {
		cancel()

		// closing a piped stdin does not always unblock a pending read.
		select {
		case <-done:
		case <-time.After(StdinStopTimeout):
		}
	}, nil
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	queue, err := forwarder.NewQueue[*audio.Clip, []byte](
		writer.NewHTTPPostWriter(cfg.IngestURL, cfg.HTTPTimeout),
		newRetryHandler(cfg.Retry),
		circuitbreaker.NewIngestBreaker[[]byte](BreakerName, cfg.Breaker.ConsecutiveFailures, cfg.Breaker.OpenTimeout, logger),
		forwarder.Options{
			Workers:    cfg.Workers,
			QueueSize:  cfg.QueueSize,
			Registerer: reg,
		},
	)
	if err != nil {
		return err
	}

	var results sync.WaitGroup
	results.Add(1)
	go func() {
		defer results.Done()
		drainResults(queue, logger)
	}()

	s := streamer.New(cfg.AudioDir, queue, reg, logger)

	stopStdin := func() {}
	if cfg.ReadStdin {
		if stopStdin, err = feedStdin(s, logger); err != nil {
			logger.WithError(err).Warn("could not read stdin")
			stopStdin = func() {}
		}
	}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ServerTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.ListenAddr).Info("starting server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		err = server.Shutdown(shutdownCtx)
	}

	stopStdin()
	queue.Stop()
	results.Wait()

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func main() {
	// a missing .env is fine, everything has a default.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Fatal("could not load .env")
	}

	app := &cli.App{
		Name:  "pcm-streamer",
		Usage: "read PCM from WAV files and forward it to an audio ingest endpoint",
		Flags: flags(),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			logger := cfg.Log.NewLogger(os.Stderr)
			logger.WithFields(logrus.Fields{
				"listen":     cfg.ListenAddr,
				"ingest_url": cfg.IngestURL,
				"audio_dir":  cfg.AudioDir,
			}).Info("config loaded")

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("pcm-streamer failed")
	}
}
