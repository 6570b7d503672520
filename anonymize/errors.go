package anonymize

import "errors"

// ErrInvalidK reports a non-positive k-anonymity target.
var ErrInvalidK = errors.New("anonymize: k must be positive")

// ErrInvalidWorkers reports a negative parallel worker count.
var ErrInvalidWorkers = errors.New("anonymize: workers must be non-negative")
