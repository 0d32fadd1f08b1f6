package fstree

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// CaseInsensitive reports whether the default file system of the platform
// compares names without regard to case.
var CaseInsensitive = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// FollowingBuilder builds trees that traverse symbolic links as if they were
// their targets. Every Build call starts with an empty set of visited
// canonical paths; a location reached a second time, through a cycle or a
// second link, is left out of the tree.
type FollowingBuilder struct {
	// FoldCase compares canonical paths case-insensitively.
	FoldCase bool
}

// NewFollowingBuilder returns a builder whose case folding matches the
// platform.
func NewFollowingBuilder() *FollowingBuilder {
	return &FollowingBuilder{FoldCase: CaseInsensitive}
}

// Build returns the tree rooted at root. The root itself is never omitted.
func (b *FollowingBuilder) Build(root string) (Node, error) {
	if _, err := statRoot(root); err != nil {
		return nil, err
	}
	w := &followWalk{
		visited:  make(map[string]struct{}),
		foldCase: b.FoldCase,
	}
	n, err := w.build(root)
	if err != nil {
		return nil, err
	}
	if n == nil {
		// root vanished between statRoot and the walk
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
	}
	return n, nil
}

// followWalk holds the state of a single Build call.
type followWalk struct {
	visited  map[string]struct{}
	foldCase bool
}

func (w *followWalk) canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	if w.foldCase {
		resolved = strings.ToLower(resolved)
	}
	return resolved, nil
}

// build returns nil with no error for anything that must be omitted:
// locations already visited, dangling links and irregular files.
func (w *followWalk) build(path string) (Node, error) {
	key, err := w.canonical(path)
	if err != nil {
		slog.Debug("skipping unresolvable path", "path", path, "error", err)
		return nil, nil
	}
	if _, seen := w.visited[key]; seen {
		slog.Debug("skipping already visited path", "path", path, "target", key)
		return nil, nil
	}
	w.visited[key] = struct{}{}

	info, err := os.Stat(path)
	if err != nil {
		slog.Debug("skipping unreadable path", "path", path, "error", err)
		return nil, nil
	}

	switch {
	case info.Mode().IsRegular():
		file, err := NewFile(path, info.Size())
		if err != nil {
			return nil, err
		}
		return file, nil
	case info.IsDir():
		return w.buildDirectory(path)
	default:
		slog.Debug("skipping irregular file", "path", path, "mode", info.Mode().String())
		return nil, nil
	}
}

func (w *followWalk) buildDirectory(path string) (Node, error) {
	dir, err := NewDirectory(path)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}
	for _, entry := range entries {
		child, err := w.build(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if err := dir.AddChild(child); err != nil {
			return nil, err
		}
	}
	return dir, nil
}
