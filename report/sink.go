package report

import (
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/valyala/fasttemplate"
)

// Kind tells what an Entry reports.
type Kind string

const (
	KindSize   Kind = "size"
	KindDigest Kind = "digest"
	KindError  Kind = "error"
)

// Entry is the result for one file.
type Entry struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Path   string `json:"path" yaml:"path"`
	Name   string `json:"name" yaml:"name"`
	Size   int64  `json:"size" yaml:"size"`
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	// Err is the failure behind a KindError entry. It matches ErrFileAccess.
	Err    error  `json:"-" yaml:"-"`
}

func (e Entry) fields() map[string]any {
	return map[string]any{
		"kind":   string(e.Kind),
		"name":   e.Name,
		"path":   e.Path,
		"size":   strconv.FormatInt(e.Size, 10),
		"digest": e.Digest,
		"key":    e.Key,
		"error":  e.Error,
	}
}

// Sink receives report entries in traversal order.
type Sink interface {
	Emit(e Entry) error
	// Close flushes anything buffered. The sink must not be used afterwards.
	Close() error
}

// Line templates of the text report. Tags are enclosed in braces.
const (
	DefaultSizeTemplate   = "{name}: {size} bytes"
	DefaultDigestTemplate = "{path}: {digest}"
	ErrorTemplate         = "Error reading file {path}: {error}"
)

var lineEnding = "\n"

func init() {
	if runtime.GOOS == "windows" {
		lineEnding = "\r\n"
	}
}

// TextSink writes one line per entry as it arrives.
type TextSink struct {
	w      io.Writer
	size   *fasttemplate.Template
	digest *fasttemplate.Template
	errs   *fasttemplate.Template
}

// NewTextSink returns a sink writing to w. A non-empty template replaces
// the default line for size and digest entries; error entries always use
// ErrorTemplate. Available tags: {name} {path} {size} {digest} {key}
// {error} {kind}.
func NewTextSink(w io.Writer, template string) (*TextSink, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil writer", ErrInvalidArgument)
	}
	sizeLine, digestLine := DefaultSizeTemplate, DefaultDigestTemplate
	if template != "" {
		sizeLine, digestLine = template, template
	}

	s := &TextSink{w: w}
	var err error
	if s.size, err = parseTemplate(sizeLine); err != nil {
		return nil, err
	}
	if s.digest, err = parseTemplate(digestLine); err != nil {
		return nil, err
	}
	if s.errs, err = parseTemplate(ErrorTemplate); err != nil {
		return nil, err
	}
	return s, nil
}

func parseTemplate(text string) (*fasttemplate.Template, error) {
	t, err := fasttemplate.NewTemplate(text, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("%w: template %q: %w", ErrInvalidArgument, text, err)
	}
	return t, nil
}

func (s *TextSink) Emit(e Entry) error {
	var t *fasttemplate.Template
	switch e.Kind {
	case KindSize:
		t = s.size
	case KindDigest:
		t = s.digest
		if e.Key == "" {
			e.Key = ContentKey(e.Digest)
		}
	case KindError:
		t = s.errs
	default:
		return fmt.Errorf("%w: unknown entry kind %q", ErrInvalidArgument, e.Kind)
	}
	_, err := io.WriteString(s.w, t.ExecuteString(e.fields())+lineEnding)
	return err
}

func (s *TextSink) Close() error { return nil }
