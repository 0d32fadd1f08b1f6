package report

import "errors"

// Sentinel errors for package report.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFileAccess wraps failures to open or read a file while computing
	// its digest. DigestReport recovers from it in place and attaches it to
	// the error entry.
	ErrFileAccess = errors.New("file access failure")
)
