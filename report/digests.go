package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dendrascience/fsaudit/fstree"
)

// Calculator computes hex digests with a named algorithm.
// *digest.Registry satisfies it.
type Calculator interface {
	Calculate(algorithm string, r io.Reader) (string, error)
	CalculateFile(algorithm, path string) (string, error)
}

// DigestReport emits the checksum of every file. A file that cannot be
// opened or read is reported inline and the traversal goes on.
type DigestReport struct {
	calc      Calculator
	algorithm string
	sink      Sink
}

// NewDigestReport checks that calc knows algorithm before any file is read,
// so an unknown algorithm fails the run instead of every file.
func NewDigestReport(calc Calculator, algorithm string, sink Sink) (*DigestReport, error) {
	if calc == nil {
		return nil, fmt.Errorf("%w: nil calculator", ErrInvalidArgument)
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: nil sink", ErrInvalidArgument)
	}
	if _, err := calc.Calculate(algorithm, strings.NewReader("")); err != nil {
		return nil, err
	}
	return &DigestReport{calc: calc, algorithm: algorithm, sink: sink}, nil
}

// ProcessFile emits the digest of f, or an error entry carrying an
// ErrFileAccess error when f cannot be read.
func (r *DigestReport) ProcessFile(f *fstree.File) error {
	if f == nil {
		return fmt.Errorf("%w: nil file", ErrInvalidArgument)
	}
	entry := Entry{Path: f.Path(), Name: f.Name(), Size: f.Size()}

	sum, err := r.calc.CalculateFile(r.algorithm, f.Path())
	if err != nil {
		slog.Warn("cannot digest file", "path", f.Path(), "error", err)
		entry.Kind = KindError
		entry.Error = err.Error()
		entry.Err = fmt.Errorf("%w: %w", ErrFileAccess, err)
		return r.sink.Emit(entry)
	}

	entry.Kind = KindDigest
	entry.Digest = sum
	return r.sink.Emit(entry)
}
