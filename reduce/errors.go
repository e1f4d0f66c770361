package reduce

import "errors"

// Sentinel errors for reduce. An ErrInternalInvariant indicates the
// pipeline itself produced an inconsistent result. It must never be
// observable under a correct implementation; the template that triggered
// it must be abandoned by the caller.
var ErrInternalInvariant = errors.New("reduce: internal invariant violated")
