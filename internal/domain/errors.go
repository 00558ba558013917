package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgItemNotOwned = "item not in inventory"

	// Slot errors
	ErrMsgInvalidSlot  = "invalid slot"
	ErrMsgSlotMismatch = "item does not fit slot"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Discord errors
	ErrMsgDiscordUpstream  = "discord request failed"
	ErrMsgDiscordConfig    = "discord credentials not configured"
	ErrMsgInvalidSignature = "invalid request signature"
	ErrMsgUnauthorized     = "unauthorized"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Profile errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrItemNotOwned = errors.New(ErrMsgItemNotOwned)

	// Slot errors
	ErrInvalidSlot  = errors.New(ErrMsgInvalidSlot)
	ErrSlotMismatch = errors.New(ErrMsgSlotMismatch)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Discord errors
	ErrDiscordUpstream  = errors.New(ErrMsgDiscordUpstream)
	ErrDiscordConfig    = errors.New(ErrMsgDiscordConfig)
	ErrInvalidSignature = errors.New(ErrMsgInvalidSignature)
	ErrUnauthorized     = errors.New(ErrMsgUnauthorized)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
