package op

import "errors"

// ErrBadIndex is returned by Gamma for a spacetime index outside 0..3.
var ErrBadIndex = errors.New("op: gamma index out of range")
