package report

import (
	"fmt"
	"io"
	"strings"
)

// Format selects the sink used for a run.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted output formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// FormatNames returns Formats joined with sep, for help texts.
func FormatNames(sep string) string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, sep)
}

// ParseFormat maps a case-insensitive name to a Format. The empty string
// selects text and "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: unknown output format %q", ErrInvalidArgument, s)
}

// NewSink returns the sink for f. template only applies to text output,
// the header only to structured output.
func NewSink(f Format, w io.Writer, template string, h Header) (Sink, error) {
	switch f {
	case FormatText:
		s, err := NewTextSink(w, template)
		if err != nil {
			return nil, err
		}
		return s, nil
	case FormatJSON:
		return NewJSONSink(w, h)
	case FormatYAML:
		return NewYAMLSink(w, h)
	}
	return nil, fmt.Errorf("%w: unknown output format %q", ErrInvalidArgument, f)
}
