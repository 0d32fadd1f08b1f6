package report_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/fsaudit/fstree"
	"github.com/dendrascience/fsaudit/report"
)

func sampleTree(t *testing.T) *fstree.Directory {
	t.Helper()
	root, err := fstree.NewDirectory("/audit")
	require.NoError(t, err)
	f, err := fstree.NewFile("/audit/a.txt", 3)
	require.NoError(t, err)
	require.NoError(t, root.AddChild(f))
	return root
}

func TestTextSink_CustomTemplate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := report.NewTextSink(&buf, "{size}\t{path}")
	require.NoError(t, err)

	require.NoError(t, s.Emit(report.Entry{Kind: report.KindSize, Path: "/x/a", Name: "a", Size: 42}))
	require.NoError(t, s.Emit(report.Entry{Kind: report.KindError, Path: "/x/b", Error: "denied"}))
	require.NoError(t, s.Close())

	got := strings.ReplaceAll(buf.String(), "\r\n", "\n")
	assert.Equal(t, "42\t/x/a\nError reading file /x/b: denied\n", got)
}

func TestTextSink_KeyTag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := report.NewTextSink(&buf, "{key}")
	require.NoError(t, err)
	require.NoError(t, s.Emit(report.Entry{Kind: report.KindDigest, Digest: "abc123"}))

	assert.Equal(t, report.ContentKey("abc123"), strings.TrimSpace(buf.String()))
}

func TestTextSink_BadTemplate(t *testing.T) {
	t.Parallel()

	_, err := report.NewTextSink(&bytes.Buffer{}, "{path")
	assert.ErrorIs(t, err, report.ErrInvalidArgument)
}

func TestTextSink_UnknownKind(t *testing.T) {
	t.Parallel()

	s, err := report.NewTextSink(&bytes.Buffer{}, "")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Emit(report.Entry{Kind: "bogus"}), report.ErrInvalidArgument)
}

func TestJSONSink(t *testing.T) {
	t.Parallel()

	root := sampleTree(t)
	h := report.NewHeader("digest", "md5", root)

	var buf bytes.Buffer
	s, err := report.NewJSONSink(&buf, h)
	require.NoError(t, err)
	require.NoError(t, s.Emit(report.Entry{
		Kind:   report.KindDigest,
		Path:   "/audit/a.txt",
		Name:   "a.txt",
		Size:   3,
		Digest: "900150983cd24fb0d6963f7d28e17f72",
	}))
	assert.Empty(t, buf.String(), "nothing is written before Close")
	require.NoError(t, s.Close())

	var doc report.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	_, err = uuid.Parse(doc.Header.RunID)
	require.NoError(t, err)
	assert.Equal(t, "digest", doc.Header.Report)
	assert.Equal(t, "md5", doc.Header.Algorithm)
	assert.Equal(t, "/audit", doc.Header.Root)
	assert.EqualValues(t, 3, doc.Header.TotalSize)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, report.ContentKey("900150983cd24fb0d6963f7d28e17f72"), doc.Entries[0].Key)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", doc.Entries[0].Digest)
}

func TestJSONSink_EmptyTree(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := report.NewJSONSink(&buf, report.NewHeader("sizes", "", sampleTree(t)))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	var doc report.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.NotNil(t, doc.Entries)
	assert.Empty(t, doc.Entries)
	assert.Error(t, s.Emit(report.Entry{Kind: report.KindSize}))
}

func TestYAMLSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := report.NewYAMLSink(&buf, report.NewHeader("sizes", "", sampleTree(t)))
	require.NoError(t, err)
	require.NoError(t, s.Emit(report.Entry{Kind: report.KindSize, Path: "/audit/a.txt", Name: "a.txt", Size: 3}))
	require.NoError(t, s.Close())

	var doc report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "sizes", doc.Header.Report)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, report.KindSize, doc.Entries[0].Kind)
	assert.Equal(t, "a.txt", doc.Entries[0].Name)
	assert.Empty(t, doc.Entries[0].Key)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    report.Format
		wantErr bool
	}{
		{in: "", want: report.FormatText},
		{in: "text", want: report.FormatText},
		{in: "JSON", want: report.FormatJSON},
		{in: "yml", want: report.FormatYAML},
		{in: "yaml", want: report.FormatYAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := report.ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, report.ErrInvalidArgument, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormats_ParseBack(t *testing.T) {
	t.Parallel()

	for _, f := range report.Formats() {
		got, err := report.ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "text|json|yaml", report.FormatNames("|"))
}

func TestContentKey(t *testing.T) {
	t.Parallel()

	d := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	key := report.ContentKey(d)

	parts := strings.SplitN(key, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, d, parts[1])
	assert.NotEmpty(t, parts[0])
	assert.LessOrEqual(t, len(parts[0]), 3)
	assert.Equal(t, key, report.ContentKey(d))
	assert.Empty(t, report.ContentKey(""))
}
