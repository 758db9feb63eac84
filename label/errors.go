package label

import "errors"

// ErrLabelTooLong is returned by ClassOf when a label's atom list has more
// than five elements. The caller must reject the label before installing it
// on a node or edge.
var ErrLabelTooLong = errors.New("label: list length exceeds maximum of 5")
