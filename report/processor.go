package report

import (
	"fmt"

	"github.com/dendrascience/fsaudit/fstree"
)

// Processor handles a single file of a tree.
type Processor interface {
	ProcessFile(f *fstree.File) error
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(f *fstree.File) error

func (fn ProcessorFunc) ProcessFile(f *fstree.File) error { return fn(f) }

type filesVisitor struct {
	p Processor
}

// Files returns a visitor that descends into every directory, children in
// order, and hands each file to p. The first error returned by p stops the
// traversal.
func Files(p Processor) fstree.Visitor {
	return filesVisitor{p: p}
}

func (v filesVisitor) VisitFile(f *fstree.File) error {
	return v.p.ProcessFile(f)
}

func (v filesVisitor) VisitDirectory(d *fstree.Directory) error {
	for _, child := range d.Children() {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// Run processes every file below root with p.
func Run(root fstree.Node, p Processor) error {
	if root == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidArgument)
	}
	if p == nil {
		return fmt.Errorf("%w: nil processor", ErrInvalidArgument)
	}
	return root.Accept(Files(p))
}
