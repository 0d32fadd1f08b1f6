package fstree

import "errors"

// Sentinel errors for package fstree.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPathNotFound    = errors.New("path not found")
)
