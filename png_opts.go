package pngchunk

import "log/slog"

// parseConfig holds configuration for Parse.
type parseConfig struct {
	maxChunkSize  uint32
	maxChunks     int
	strictTrailer bool
	logger        *slog.Logger
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// WithMaxChunkSize rejects any chunk that declares more than limit payload bytes.
// Set limit to 0 to disable the limit.
func WithMaxChunkSize(limit uint32) ParseOption {
	return func(c *parseConfig) {
		c.maxChunkSize = limit
	}
}

// WithMaxChunks rejects streams holding more than n chunks.
// Zero or a negative value disables the limit.
func WithMaxChunks(n int) ParseOption {
	return func(c *parseConfig) {
		if n < 0 {
			n = 0
		}
		c.maxChunks = n
	}
}

// WithStrictTrailer controls what happens to 1 to 11 bytes left after the
// last complete chunk, too few to hold another record.
//
// By default they are dropped. In strict mode Parse fails with ErrTrailingData.
func WithStrictTrailer(strict bool) ParseOption {
	return func(c *parseConfig) {
		c.strictTrailer = strict
	}
}

// WithLogger sets the logger used for debug output while parsing.
// A nil logger discards output.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) {
		c.logger = logger
	}
}

func newParseConfig(opts []ParseOption) parseConfig {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
