package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Collections and adapters return
// these (optionally wrapped) so callers can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the collection
// - ErrConcurrentModification: structural mutation detected mid-traversal
// - ErrInvalidState: entity in wrong state for requested operation
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound               = errors.New("not found")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrInvalidState           = errors.New("invalid state")
)
