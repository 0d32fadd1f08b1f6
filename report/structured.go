package report

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/dendrascience/fsaudit/fstree"
)

// Header describes one run in structured output.
type Header struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Report    string    `json:"report" yaml:"report"`
	Algorithm string    `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Root      string    `json:"root" yaml:"root"`
	TotalSize int64     `json:"total_size" yaml:"total_size"`
	Generated time.Time `json:"generated" yaml:"generated"`
}

// NewHeader stamps a fresh run ID. TotalSize is the accumulated size of
// root, so it counts exactly the files the report lists.
func NewHeader(report, algorithm string, root fstree.Node) Header {
	h := Header{
		RunID:     uuid.NewString(),
		Report:    report,
		Algorithm: algorithm,
		Generated: time.Now().UTC(),
	}
	if root != nil {
		h.Root = root.Path()
		h.TotalSize = root.Size()
	}
	return h
}

// Document is the whole structured report.
type Document struct {
	Header  Header  `json:"header" yaml:"header"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

type encodeFunc func(w io.Writer, doc Document) error

// structuredSink buffers entries until Close.
type structuredSink struct {
	w      io.Writer
	doc    Document
	encode encodeFunc
	closed bool
}

func newStructuredSink(w io.Writer, h Header, encode encodeFunc) (*structuredSink, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil writer", ErrInvalidArgument)
	}
	return &structuredSink{
		w:      w,
		doc:    Document{Header: h, Entries: []Entry{}},
		encode: encode,
	}, nil
}

// NewJSONSink returns a sink writing one indented JSON document.
func NewJSONSink(w io.Writer, h Header) (Sink, error) {
	s, err := newStructuredSink(w, h, func(w io.Writer, doc Document) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewYAMLSink returns a sink writing one YAML document.
func NewYAMLSink(w io.Writer, h Header) (Sink, error) {
	s, err := newStructuredSink(w, h, func(w io.Writer, doc Document) error {
		out, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *structuredSink) Emit(e Entry) error {
	if s.closed {
		return fmt.Errorf("%w: emit after close", ErrInvalidArgument)
	}
	if e.Kind == KindDigest && e.Key == "" {
		e.Key = ContentKey(e.Digest)
	}
	s.doc.Entries = append(s.doc.Entries, e)
	return nil
}

func (s *structuredSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.encode(s.w, s.doc); err != nil {
		return fmt.Errorf("encoding %s report: %w", s.doc.Header.Report, err)
	}
	return nil
}
