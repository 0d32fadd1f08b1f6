package fstree

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Builder turns a path into a tree.
type Builder interface {
	Build(root string) (Node, error)
}

// NewBuilder returns a FollowingBuilder when followSymlinks is set and an
// IgnoringBuilder otherwise. foldCase only applies to the former.
func NewBuilder(followSymlinks, foldCase bool) Builder {
	if followSymlinks {
		return &FollowingBuilder{FoldCase: foldCase}
	}
	return IgnoringBuilder{}
}

// statRoot resolves the root of a build. The root itself is always
// dereferenced: naming a link on the command line means its target.
func statRoot(root string) (fs.FileInfo, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: root path is empty", ErrInvalidArgument)
	}
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrPathNotFound, root, err)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.Mode().IsRegular() && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is neither a regular file nor a directory", ErrPathNotFound, root)
	}
	return info, nil
}

// IgnoringBuilder builds trees without ever following a symbolic link.
// Links found inside the tree are left out entirely, as are sockets, pipes
// and devices. At each level files come before subdirectories, both in
// directory listing order.
type IgnoringBuilder struct{}

// Build returns a File for a regular-file root and a Directory otherwise.
func (b IgnoringBuilder) Build(root string) (Node, error) {
	info, err := statRoot(root)
	if err != nil {
		return nil, err
	}
	if info.Mode().IsRegular() {
		file, err := NewFile(root, info.Size())
		if err != nil {
			return nil, err
		}
		return file, nil
	}
	dir, err := b.buildDirectory(root)
	if err != nil {
		return nil, err
	}
	return dir, nil
}

func (b IgnoringBuilder) buildDirectory(path string) (*Directory, error) {
	dir, err := NewDirectory(path)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}

	var subdirs []string
	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())
		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			slog.Debug("skipping symlink", "path", entryPath)
		case entry.IsDir():
			subdirs = append(subdirs, entryPath)
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("file vanished during listing", "path", entryPath)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", entryPath, err)
			}
			file, err := NewFile(entryPath, info.Size())
			if err != nil {
				return nil, err
			}
			if err := dir.AddChild(file); err != nil {
				return nil, err
			}
		default:
			slog.Debug("skipping irregular file", "path", entryPath, "mode", entry.Type().String())
		}
	}

	for _, sub := range subdirs {
		child, err := b.buildDirectory(sub)
		if err != nil {
			return nil, err
		}
		if err := dir.AddChild(child); err != nil {
			return nil, err
		}
	}
	return dir, nil
}
