package output

import "errors"

// ErrUnsupportedFormat is returned for an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")
