// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import "errors"

var (
	ErrNameTooLong                = errors.New("poll name too long")
	ErrInvalidSlotCount           = errors.New("slot count must be positive")
	ErrDuplicateName              = errors.New("poll already exists")
	ErrPollNotFound               = errors.New("poll not found")
	ErrLabelCountMismatch         = errors.New("label count does not match slot count")
	ErrDuplicateParticipant       = errors.New("participant already exists")
	ErrParticipantNotFound        = errors.New("participant not found")
	ErrAvailabilityLengthMismatch = errors.New("availability length does not match slot count")
	ErrAllocationFailure          = errors.New("allocation failure")
	ErrClosed                     = errors.New("registry closed")
)
