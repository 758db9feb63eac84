package snapshot

import "errors"

// ErrEmptyStack is returned by Restore when there is no pushed snapshot to
// pop.
var ErrEmptyStack = errors.New("snapshot: stack is empty")
