package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

const (
	DefaultListenAddr = ":8556"
	DefaultIngestURL  = "http://127.0.0.1:8080/audio_input"
	DefaultAudioDir   = "./audio_files"

	// QueueNoLimit lets the forwarder queue grow without bound.
	QueueNoLimit = -1
)

// Config holds everything the PCM streamer needs to read WAV files and forward them to an ingest endpoint.
type Config struct {
	ListenAddr  string        `toml:"listen_addr"`
	IngestURL   string        `toml:"ingest_url"`
	AudioDir    string        `toml:"audio_dir"`
	HTTPTimeout time.Duration `toml:"http_timeout"`
	// Workers is the number of concurrent deliveries to the ingest endpoint.
	Workers int `toml:"workers"`
	// QueueSize is the number of clips buffered before the oldest is dropped, QueueNoLimit disables the limit.
	QueueSize int  `toml:"queue_size"`
	ReadStdin bool `toml:"read_stdin"`

	Retry   RetryConfig   `toml:"retry"`
	Breaker BreakerConfig `toml:"breaker"`
	Log     LogConfig     `toml:"log"`
}

type RetryConfig struct {
	WaitTime    time.Duration `toml:"wait_time"`
	MaxAttempts int           `toml:"max_attempts"`
	// Exponential doubles WaitTime after every failed attempt up to MaxWait.
	Exponential bool          `toml:"exponential"`
	MaxWait     time.Duration `toml:"max_wait"`
}

type BreakerConfig struct {
	ConsecutiveFailures uint32        `toml:"consecutive_failures"`
	OpenTimeout         time.Duration `toml:"open_timeout"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		ListenAddr:  DefaultListenAddr,
		IngestURL:   DefaultIngestURL,
		AudioDir:    DefaultAudioDir,
		HTTPTimeout: 10 * time.Second,
		Workers:     4,
		QueueSize:   QueueNoLimit,
		Retry: RetryConfig{
			WaitTime:    time.Second,
			MaxAttempts: 5,
			MaxWait:     30 * time.Second,
		},
		Breaker: BreakerConfig{
			ConsecutiveFailures: 5,
			OpenTimeout:         60 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFile overlays the TOML file at path on cfg. Keys missing from the file keep their current value.
func LoadFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("bad config %s: %w", path, err)
	}

	return nil
}

// Validate makes sure the configuration is usable and reports every problem at once.
func (c *Config) Validate() error {
	var result error

	if c.ListenAddr == "" {
		result = multierror.Append(result, ConfigurationError("ListenAddr cannot be empty"))
	}

	if u, err := url.Parse(c.IngestURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		result = multierror.Append(result, ConfigurationError("IngestURL should be an absolute http(s) url"))
	}

	if c.AudioDir == "" {
		result = multierror.Append(result, ConfigurationError("AudioDir cannot be empty"))
	}

	if c.HTTPTimeout <= 0 {
		result = multierror.Append(result, ConfigurationError("HTTPTimeout should be higher than zero"))
	}

	if c.Workers <= 0 {
		result = multierror.Append(result, ConfigurationError("Workers should be higher than zero"))
	}

	if c.QueueSize <= 0 && c.QueueSize != QueueNoLimit {
		result = multierror.Append(result, ConfigurationError("QueueSize should be higher than zero or should be set to QueueNoLimit"))
	}

	if c.Retry.MaxAttempts <= 0 {
		result = multierror.Append(result, ConfigurationError("Retry.MaxAttempts should be higher than zero"))
	}

	if c.Retry.MaxAttempts > 1 && c.Retry.WaitTime <= 0 {
		result = multierror.Append(result, ConfigurationError("Retry.WaitTime should be higher than zero"))
	}

	if c.Retry.Exponential && c.Retry.MaxWait <= 0 {
		result = multierror.Append(result, ConfigurationError("Retry.MaxWait should be higher than zero when Retry.Exponential is set"))
	}

	if c.Breaker.ConsecutiveFailures == 0 {
		result = multierror.Append(result, ConfigurationError("Breaker.ConsecutiveFailures should be higher than zero"))
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, ConfigurationError("Log.Level "+err.Error()))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, ConfigurationError("Log.Format should be text or json"))
	}

	return result
}
