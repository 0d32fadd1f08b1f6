package fstree

import (
	"fmt"
	"path/filepath"
)

// Node is a file or a directory in a tree.
type Node interface {
	// Path is the location the node was reached at during the build.
	Path() string
	// Size is the byte count of a file, or the total of all files below
	// a directory.
	Size() int64
	// Name is the last element of Path.
	Name() string
	// Accept dispatches to the visitor method matching the node kind.
	Accept(v Visitor) error
}

// Visitor is implemented by anything that processes a tree.
type Visitor interface {
	VisitFile(f *File) error
	VisitDirectory(d *Directory) error
}

type node struct {
	path string
	size int64
}

func (n *node) Path() string { return n.path }
func (n *node) Size() int64  { return n.size }
func (n *node) Name() string { return filepath.Base(n.path) }

// File is a leaf node. Its size is fixed at construction.
type File struct {
	node
}

// NewFile returns a file node of the given size.
func NewFile(path string, size int64) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path is empty", ErrInvalidArgument)
	}
	return &File{node{path: path, size: size}}, nil
}

// Accept calls v.VisitFile with f.
func (f *File) Accept(v Visitor) error {
	if v == nil {
		return fmt.Errorf("%w: nil visitor", ErrInvalidArgument)
	}
	return v.VisitFile(f)
}

// Directory owns its children. Its size grows as children are added and is
// never read back from the file system.
type Directory struct {
	node
	children []Node
}

// NewDirectory returns an empty directory node.
func NewDirectory(path string) (*Directory, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: directory path is empty", ErrInvalidArgument)
	}
	return &Directory{node: node{path: path}}, nil
}

// AddChild appends child and adds its size to the directory.
func (d *Directory) AddChild(child Node) error {
	if child == nil {
		return fmt.Errorf("%w: nil child for %s", ErrInvalidArgument, d.path)
	}
	d.children = append(d.children, child)
	d.size += child.Size()
	return nil
}

// Children returns the children in the order they were added.
// The returned slice must not be modified.
func (d *Directory) Children() []Node {
	return d.children
}

// Accept calls v.VisitDirectory with d. Visiting the children is up to v.
func (d *Directory) Accept(v Visitor) error {
	if v == nil {
		return fmt.Errorf("%w: nil visitor", ErrInvalidArgument)
	}
	return v.VisitDirectory(d)
}
