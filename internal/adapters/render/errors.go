package render

import "errors"

// Sentinel kinds for renderer errors.
var (
	ErrRender = errors.New("pdf render failed")
)
