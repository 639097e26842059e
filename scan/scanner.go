package scan

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/rowscan/rowscan/errs"
	"github.com/rowscan/rowscan/internal/pool"
)

// maxConsecutiveEmptyReads bounds how many zero-byte, nil-error reads the
// scanner tolerates before reporting io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// Scanner splits a byte stream into newline-terminated records using a
// single fixed-capacity chunk buffer.
//
// The buffer is refilled in place: records found in the current window are
// emitted as zero-copy spans, then any unterminated tail is compacted to
// the front of the buffer before the next read. Two cursors track the
// window, with 0 <= consumed <= buffered <= cap at all times.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	r   io.Reader
	cfg *Config
	buf *pool.ChunkBuffer

	consumed int   // start of unprocessed data in buf.B
	buffered int   // end of valid data in buf.B
	base     int64 // source offset of buf.B[0]

	line       int64 // 1-based number of the most recently emitted record
	lineOffset int64 // source offset of that record's first byte

	eof      bool
	err      error
	released bool
}

// NewScanner creates a Scanner reading from r, configured by opts.
func NewScanner(r io.Reader, opts ...Option) (*Scanner, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return NewScannerWithConfig(r, cfg), nil
}

// NewScannerWithConfig creates a Scanner from an already-built Config.
// The group package uses this to share one Config between the scanner and
// its own tokenizing loop.
func NewScannerWithConfig(r io.Reader, cfg *Config) *Scanner {
	return &Scanner{
		r:   r,
		cfg: cfg,
		buf: pool.GetChunkBuffer(cfg.chunkCapacity),
	}
}

// Lines returns a single-use iterator over the records of the source, in
// order, with the terminator excluded. The final record is emitted even if
// the source does not end with a terminator.
//
// Each yielded slice aliases the scanner's buffer and is invalidated by
// the next iteration step. After the loop, check Err for a read error,
// an ErrLineTooLong failure, or context cancellation; a nil Err means the
// source was consumed completely.
func (s *Scanner) Lines() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			// Emit every complete record already in the window. More than
			// one may be present after a single refill.
			for {
				window := s.buf.B[s.consumed:s.buffered]
				p := bytes.IndexByte(window, terminator)
				if p < 0 {
					break
				}
				s.line++
				s.lineOffset = s.base + int64(s.consumed)
				s.consumed += p + 1
				if !yield(window[:p]) {
					return
				}
			}

			if !s.fill() {
				break
			}
		}

		// End of source with an unterminated final record.
		if s.err == nil && s.consumed < s.buffered {
			s.line++
			s.lineOffset = s.base + int64(s.consumed)
			tail := s.buf.B[s.consumed:s.buffered]
			s.consumed = s.buffered
			yield(tail)
		}
	}
}

// fill compacts the unconsumed tail to the front of the buffer and reads
// more data after it. It returns false when no further bytes can be
// produced, either because the source is exhausted or because an error
// (recorded in s.err) stopped the scan.
func (s *Scanner) fill() bool {
	if s.err != nil || s.eof {
		return false
	}
	if ctx := s.cfg.ctx; ctx != nil {
		if err := ctx.Err(); err != nil {
			s.err = err
			return false
		}
	}

	// Compaction: the partial record moves to offset 0, keeping it
	// contiguous and freeing the rest of the buffer for the next read.
	if s.consumed > 0 {
		copy(s.buf.B, s.buf.B[s.consumed:s.buffered])
		s.base += int64(s.consumed)
		s.buffered -= s.consumed
		s.consumed = 0
	}

	if s.buffered == len(s.buf.B) {
		// A full buffer with no terminator: the record does not fit.
		if !s.cfg.grow {
			s.err = fmt.Errorf("%w: no terminator within %d bytes of record starting at byte %d",
				errs.ErrLineTooLong, len(s.buf.B), s.base)

			return false
		}
		s.buf.Grow(len(s.buf.B) * 2)
	}

	for empty := 0; ; {
		n, err := s.r.Read(s.buf.B[s.buffered:])
		if err != nil {
			if err == io.EOF {
				s.eof = true
				if n > 0 {
					s.buffered += n
					return true
				}

				return false
			}
			// Read failures propagate to the caller unchanged.
			s.err = err

			return false
		}
		if n > 0 {
			s.buffered += n
			return true
		}
		if empty++; empty >= maxConsecutiveEmptyReads {
			s.err = io.ErrNoProgress
			return false
		}
	}
}

// Err returns the error that stopped the scan, or nil if the source was
// consumed completely.
func (s *Scanner) Err() error { return s.err }

// Line returns the 1-based number of the most recently emitted record,
// or 0 before the first record.
func (s *Scanner) Line() int64 { return s.line }

// Offset returns the source byte offset of the most recently emitted
// record's first byte.
func (s *Scanner) Offset() int64 { return s.lineOffset }

// Release returns the scanner's buffer to the pool. The scanner and any
// spans it produced must not be used afterwards. Release is idempotent.
func (s *Scanner) Release() {
	if s.released {
		return
	}
	s.released = true
	pool.PutChunkBuffer(s.buf)
	s.buf = nil
}
