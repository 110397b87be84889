// ABOUTME: Sentinel domain errors shared across adapters and services
package domain

import "errors"

// ErrNotFound means the upstream source has no entry for the text.
var ErrNotFound = errors.New("entry not found")
