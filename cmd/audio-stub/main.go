package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mhabedinpour/pcm-audio-stub/pkg/ingest"

	"github.com/sirupsen/logrus"
)

const (
	ListenAddr      = "127.0.0.1:8080"
	ServerTimeout   = 5 * time.Second
	ShutdownTimeout = 5 * time.Second
)

// serve answers ingest requests on listener until ctx is done.
func serve(ctx context.Context, listener net.Listener, out io.Writer, logger *logrus.Logger) error {
	server := &http.Server{
		Handler:           ingest.NewHandler(ingest.NewConsoleLogger(out)),
		ReadHeaderTimeout: ServerTimeout,
		// per-connection transport errors only show up at debug level.
		ErrorLog: log.New(logger.WriterLevel(logrus.DebugLevel), "", 0),
	}

	_, _ = fmt.Fprintf(out, "Test server listening on http://%s\n", listener.Addr())
	_, _ = fmt.Fprintf(out, "Waiting for audio data on %s endpoint...\n", ingest.AudioInputPath)

	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	_, _ = fmt.Fprintln(out, "\nShutting down test server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("abandoned in-flight requests")
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	logger := logrus.New()

	listener, err := net.Listen("tcp", ListenAddr)
	if err != nil {
		logger.WithError(err).Fatal("could not listen")
	}
	defer func() {
		_ = listener.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, listener, os.Stdout, logger); err != nil {
		logger.WithError(err).Error("server stopped")
	}
}
