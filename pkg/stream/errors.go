package stream

import "errors"

// ErrNoStream indicates the decoder was constructed without a byte source.
var ErrNoStream = errors.New("no stream available")
