package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrValidation indicates item fields violate catalog rules.
	ErrValidation = errors.New("invalid item")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrPersistence indicates the collection was changed in memory but the
	// write to the blob store failed. The change stays visible.
	ErrPersistence = errors.New("catalog not persisted")

	// ErrEnrichment indicates description generation failed.
	ErrEnrichment = errors.New("description generation failed")

	// ErrUnknownSettlementMethod indicates an unsupported checkout payment method.
	ErrUnknownSettlementMethod = errors.New("unknown settlement method")
)
