package scan

import (
	"context"
	"fmt"

	"github.com/rowscan/rowscan/errs"
	"github.com/rowscan/rowscan/internal/options"
)

const (
	// DefaultChunkCapacity is the default size of the scanner's read
	// buffer. It bounds both memory use and the maximum record length
	// unless growth is enabled.
	DefaultChunkCapacity = 1024 * 1024 // 1MiB

	// DefaultDelimiter is the default field separator.
	DefaultDelimiter = byte(',')

	// DefaultFilterField is the default zero-based index of the column
	// compared against the target key.
	DefaultFilterField = 1

	// DefaultValueField is the default zero-based index of the numeric
	// column folded into the aggregate.
	DefaultValueField = 2
)

// terminator is the fixed record terminator. Records use bare '\n'; a
// preceding '\r' is treated as part of the record, not stripped.
const terminator = byte('\n')

// Config holds the scanning parameters shared by Scanner, Aggregate and
// the group package. Construct it with NewConfig and functional options;
// the zero value is not usable.
type Config struct {
	chunkCapacity int
	delimiter     byte
	filterField   int
	valueField    int
	grow          bool
	ctx           context.Context
}

// NewConfig returns a Config with defaults applied, then modified by opts.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		chunkCapacity: DefaultChunkCapacity,
		delimiter:     DefaultDelimiter,
		filterField:   DefaultFilterField,
		valueField:    DefaultValueField,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ChunkCapacity returns the configured read buffer capacity in bytes.
func (c *Config) ChunkCapacity() int { return c.chunkCapacity }

// Delimiter returns the configured field separator byte.
func (c *Config) Delimiter() byte { return c.delimiter }

// FilterField returns the zero-based index of the filter column.
func (c *Config) FilterField() int { return c.filterField }

// ValueField returns the zero-based index of the value column.
func (c *Config) ValueField() int { return c.valueField }

// Option configures a Config.
type Option = options.Option[*Config]

// WithChunkCapacity sets the read buffer capacity in bytes.
//
// The capacity bounds memory use and, unless WithBufferGrowth is given,
// also bounds the maximum record length. Must be positive.
func WithChunkCapacity(capacity int) Option {
	return options.New(func(c *Config) error {
		if capacity <= 0 {
			return fmt.Errorf("%w: chunk capacity must be positive, got %d", errs.ErrInvalidConfig, capacity)
		}
		c.chunkCapacity = capacity

		return nil
	})
}

// WithDelimiter sets the field separator byte. The record terminator '\n'
// is not a valid delimiter.
func WithDelimiter(delim byte) Option {
	return options.New(func(c *Config) error {
		if delim == terminator {
			return fmt.Errorf("%w: delimiter cannot be the record terminator", errs.ErrInvalidConfig)
		}
		c.delimiter = delim

		return nil
	})
}

// WithFilterField sets the zero-based index of the column compared against
// the target key.
func WithFilterField(index int) Option {
	return options.New(func(c *Config) error {
		if index < 0 {
			return fmt.Errorf("%w: filter field index must be non-negative, got %d", errs.ErrInvalidConfig, index)
		}
		c.filterField = index

		return nil
	})
}

// WithValueField sets the zero-based index of the numeric column folded
// into the aggregate.
func WithValueField(index int) Option {
	return options.New(func(c *Config) error {
		if index < 0 {
			return fmt.Errorf("%w: value field index must be non-negative, got %d", errs.ErrInvalidConfig, index)
		}
		c.valueField = index

		return nil
	})
}

// WithBufferGrowth allows the scanner to double its buffer when a record
// exceeds the chunk capacity, instead of failing with ErrLineTooLong.
//
// Growth trades the fixed memory bound for tolerance of oversized records;
// the default is to fail fast so memory use stays predictable.
func WithBufferGrowth() Option {
	return options.NoError(func(c *Config) {
		c.grow = true
	})
}

// WithContext attaches a context checked between buffer refills. When the
// context is cancelled the scan stops and the context's error is reported
// by Scanner.Err (and returned by Aggregate).
func WithContext(ctx context.Context) Option {
	return options.NoError(func(c *Config) {
		c.ctx = ctx
	})
}
