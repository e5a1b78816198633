package main

import (
	"github.com/mhabedinpour/pcm-audio-stub/pkg/config"

	"github.com/urfave/cli/v2"
)

const envPrefix = "PCM_STREAMER_"

func envVars(name string) []string {
	return []string{envPrefix + name}
}

func flags() []cli.Flag {
	def := config.Default()

	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "path to a TOML config file", EnvVars: envVars("CONFIG")},
		&cli.StringFlag{Name: "addr", Value: def.ListenAddr, Usage: "HTTP server listen address", EnvVars: envVars("ADDR")},
		&cli.StringFlag{Name: "ingest-url", Value: def.IngestURL, Usage: "audio ingest endpoint URL", EnvVars: envVars("INGEST_URL")},
		&cli.StringFlag{Name: "audio-dir", Value: def.AudioDir, Usage: "directory containing WAV files", EnvVars: envVars("AUDIO_DIR")},
		&cli.DurationFlag{Name: "http-timeout", Value: def.HTTPTimeout, Usage: "timeout of a single POST to the ingest endpoint", EnvVars: envVars("HTTP_TIMEOUT")},
		&cli.IntFlag{Name: "workers", Value: def.Workers, Usage: "concurrent deliveries", EnvVars: envVars("WORKERS")},
		&cli.IntFlag{Name: "queue-size", Value: def.QueueSize, Usage: "max queued clips, -1 for no limit", EnvVars: envVars("QUEUE_SIZE")},
		&cli.BoolFlag{Name: "stdin", Usage: "also read file names from stdin, one per line", EnvVars: envVars("STDIN")},
		&cli.DurationFlag{Name: "retry-wait", Value: def.Retry.WaitTime, Usage: "wait between delivery attempts", EnvVars: envVars("RETRY_WAIT")},
		&cli.IntFlag{Name: "retry-attempts", Value: def.Retry.MaxAttempts, Usage: "max delivery attempts per clip", EnvVars: envVars("RETRY_ATTEMPTS")},
		&cli.BoolFlag{Name: "retry-exponential", Usage: "double the wait after every failed attempt", EnvVars: envVars("RETRY_EXPONENTIAL")},
		&cli.DurationFlag{Name: "retry-max-wait", Value: def.Retry.MaxWait, Usage: "upper bound of the exponential wait", EnvVars: envVars("RETRY_MAX_WAIT")},
		&cli.UintFlag{Name: "breaker-failures", Value: uint(def.Breaker.ConsecutiveFailures), Usage: "consecutive failures that open the circuit breaker", EnvVars: envVars("BREAKER_FAILURES")},
		&cli.DurationFlag{Name: "breaker-timeout", Value: def.Breaker.OpenTimeout, Usage: "how long the breaker stays open", EnvVars: envVars("BREAKER_TIMEOUT")},
		&cli.StringFlag{Name: "loglvl", Value: def.Log.Level, Usage: "logging level: trace, debug, info, warn, error or fatal", EnvVars: envVars("LOG_LEVEL")},
		&cli.StringFlag{Name: "logfmt", Value: def.Log.Format, Usage: "format logs as text or json", EnvVars: envVars("LOG_FORMAT")},
	}
}

// loadConfig applies, in order: defaults, the --config file, then flags and env vars that were set explicitly.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		if err := config.LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if c.IsSet("addr") {
		cfg.ListenAddr = c.String("addr")
	}
	if c.IsSet("ingest-url") {
		cfg.IngestURL = c.String("ingest-url")
	}
	if c.IsSet("audio-dir") {
		cfg.AudioDir = c.String("audio-dir")
	}
	if c.IsSet("http-timeout") {
		cfg.HTTPTimeout = c.Duration("http-timeout")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("queue-size") {
		cfg.QueueSize = c.Int("queue-size")
	}
	if c.IsSet("stdin") {
		cfg.ReadStdin = c.Bool("stdin")
	}
	if c.IsSet("retry-wait") {
		cfg.Retry.WaitTime = c.Duration("retry-wait")
	}
	if c.IsSet("retry-attempts") {
		cfg.Retry.MaxAttempts = c.Int("retry-attempts")
	}
	if c.IsSet("retry-exponential") {
		cfg.Retry.Exponential = c.Bool("retry-exponential")
	}
	if c.IsSet("retry-max-wait") {
		cfg.Retry.MaxWait = c.Duration("retry-max-wait")
	}
	if c.IsSet("breaker-failures") {
		cfg.Breaker.ConsecutiveFailures = uint32(c.Uint("breaker-failures"))
	}
	if c.IsSet("breaker-timeout") {
		cfg.Breaker.OpenTimeout = c.Duration("breaker-timeout")
	}
	if c.IsSet("loglvl") {
		cfg.Log.Level = c.String("loglvl")
	}
	if c.IsSet("logfmt") {
		cfg.Log.Format = c.String("logfmt")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
