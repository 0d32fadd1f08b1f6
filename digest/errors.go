package digest

import "errors"

// Sentinel errors for package digest.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
)
