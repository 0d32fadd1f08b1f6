// Package report turns fstree trees into per-file reports.
//
// Processing is split in two. Files adapts a Processor, which only knows how
// to handle one file, into an fstree.Visitor that walks every directory in
// order; concrete reports therefore never implement recursion themselves.
// SizeReport and DigestReport are the two processors fsaudit ships.
//
// Processors hand their results to a Sink as Entry values. TextSink renders
// one line per entry through fasttemplate; JSONSink and YAMLSink buffer the
// entries and write a single document with a run header when closed.
package report
