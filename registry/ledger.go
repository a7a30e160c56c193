// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/slot-poll/models"
)

// AddParticipant adds a participant to the front of the poll's ledger.
func (r *Registry) AddParticipant(pollName, partName, availability string) error {
	e, err := r.lookup(pollName)
	if err != nil {
		return err
	}
	if _, exists := e.parts[partName]; exists {
		return fmt.Errorf("%w: %q in poll %q", ErrDuplicateParticipant, partName, pollName)
	}
	if err := checkAvailability(e.poll, availability); err != nil {
		return err
	}
	if r.opts.MaxParticipants > 0 && len(e.poll.Participants) >= r.opts.MaxParticipants {
		return fmt.Errorf("%w: poll %q holds the maximum of %d participants",
			ErrAllocationFailure, pollName, r.opts.MaxParticipants)
	}

	part := &models.Participant{
		Name:         partName,
		Availability: availability,
	}
	e.poll.Participants = slices.Insert(e.poll.Participants, 0, part)
	e.parts[partName] = part
	return nil
}

// AddComment sets or replaces the participant's comment.
func (r *Registry) AddComment(pollName, partName, comment string) error {
	part, err := r.participant(pollName, partName)
	if err != nil {
		return err
	}
	part.Comment = &comment
	return nil
}

// UpdateAvailability overwrites the participant's votes. The length is
// checked before the participant is looked up.
func (r *Registry) UpdateAvailability(pollName, partName, availability string) error {
	e, err := r.lookup(pollName)
	if err != nil {
		return err
	}
	if err := checkAvailability(e.poll, availability); err != nil {
		return err
	}
	part, ok := e.parts[partName]
	if !ok {
		return fmt.Errorf("%w: %q in poll %q", ErrParticipantNotFound, partName, pollName)
	}
	part.Availability = availability
	return nil
}

// FindParticipant returns a copy of the named participant.
func (r *Registry) FindParticipant(pollName, partName string) (models.Participant, bool) {
	part, err := r.participant(pollName, partName)
	if err != nil {
		return models.Participant{}, false
	}
	return part.Clone(), true
}

func (r *Registry) participant(pollName, partName string) (*models.Participant, error) {
	e, err := r.lookup(pollName)
	if err != nil {
		return nil, err
	}
	part, ok := e.parts[partName]
	if !ok {
		return nil, fmt.Errorf("%w: %q in poll %q", ErrParticipantNotFound, partName, pollName)
	}
	return part, nil
}

func checkAvailability(p *models.Poll, availability string) error {
	if len(availability) != p.SlotCount {
		return fmt.Errorf("%w: poll %q has %d slots, got %d",
			ErrAvailabilityLengthMismatch, p.Name, p.SlotCount, len(availability))
	}
	return nil
}
