package artifact

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidArtifact = errors.New("invalid model artifact")
	ErrInference       = errors.New("inference failed")
)
