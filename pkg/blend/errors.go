package blend

import "errors"

// ErrStalePatch is returned by [Patch.Apply] when the target graph's link at
// an update index has a different identity than the one the patch was
// computed for.
var ErrStalePatch = errors.New("stale blend patch")
