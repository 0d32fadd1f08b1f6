package report

import (
	"fmt"

	"github.com/dendrascience/fsaudit/fstree"
)

// SizeReport emits the base name and size of every file.
type SizeReport struct {
	sink Sink
}

// NewSizeReport returns a size report writing to sink.
func NewSizeReport(sink Sink) (*SizeReport, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: nil sink", ErrInvalidArgument)
	}
	return &SizeReport{sink: sink}, nil
}

// ProcessFile emits one size entry for f.
func (r *SizeReport) ProcessFile(f *fstree.File) error {
	if f == nil {
		return fmt.Errorf("%w: nil file", ErrInvalidArgument)
	}
	return r.sink.Emit(Entry{
		Kind: KindSize,
		Path: f.Path(),
		Name: f.Name(),
		Size: f.Size(),
	})
}
