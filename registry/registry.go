// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"
	"iter"
	"slices"

	"github.com/danielhkuo/slot-poll/models"
)

// Options caps how much the registry will allocate. Zero values mean no
// limit, except MaxSlots which falls back to models.MaxSlotCount.
type Options struct {
	MaxPolls        int
	MaxSlots        int
	MaxParticipants int
}

type entry struct {
	poll  *models.Poll
	parts map[string]*models.Participant
}

// Registry owns every poll and, through them, every participant.
// It is not safe for concurrent use.
type Registry struct {
	opts   Options
	polls  []*entry
	byName map[string]*entry
	closed bool
}

func New(opts Options) *Registry {
	if opts.MaxSlots <= 0 || opts.MaxSlots > models.MaxSlotCount {
		opts.MaxSlots = models.MaxSlotCount
	}
	return &Registry{
		opts:   opts,
		byName: make(map[string]*entry),
	}
}

// InsertNewPoll appends an unconfigured poll with no participants.
func (r *Registry) InsertNewPoll(name string, slotCount int) error {
	if r.closed {
		return ErrClosed
	}
	if len(name) > models.MaxNameLen {
		return fmt.Errorf("%w: %d bytes, max %d", ErrNameTooLong, len(name), models.MaxNameLen)
	}
	if slotCount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSlotCount, slotCount)
	}
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if slotCount > r.opts.MaxSlots {
		return fmt.Errorf("%w: %d slots exceeds limit of %d", ErrAllocationFailure, slotCount, r.opts.MaxSlots)
	}
	if r.opts.MaxPolls > 0 && len(r.polls) >= r.opts.MaxPolls {
		return fmt.Errorf("%w: registry holds the maximum of %d polls", ErrAllocationFailure, r.opts.MaxPolls)
	}

	e := &entry{
		poll:  models.NewPoll(name, slotCount),
		parts: make(map[string]*models.Participant),
	}
	r.polls = append(r.polls, e)
	r.byName[name] = e
	return nil
}

// FindPoll returns a copy of the named poll.
func (r *Registry) FindPoll(name string) (models.Poll, bool) {
	e, ok := r.byName[name]
	if !ok {
		return models.Poll{}, false
	}
	return e.poll.Clone(), true
}

// ConfigurePoll replaces the poll's slot labels.
func (r *Registry) ConfigurePoll(name string, labels []string) error {
	e, err := r.lookup(name)
	if err != nil {
		return err
	}
	if len(labels) != e.poll.SlotCount {
		return fmt.Errorf("%w: poll %q has %d slots, got %d labels",
			ErrLabelCountMismatch, name, e.poll.SlotCount, len(labels))
	}
	e.poll.SlotLabels = slices.Clone(labels)
	return nil
}

// DeletePoll removes the poll and releases its participants.
func (r *Registry) DeletePoll(name string) error {
	e, err := r.lookup(name)
	if err != nil {
		return err
	}
	i := slices.Index(r.polls, e)
	r.polls = slices.Delete(r.polls, i, i+1)
	delete(r.byName, name)
	e.release()
	return nil
}

// ListPolls yields poll names in insertion order. The sequence is fixed
// when ListPolls is called and may be ranged over any number of times.
func (r *Registry) ListPolls() iter.Seq[string] {
	names := make([]string, len(r.polls))
	for i, e := range r.polls {
		names[i] = e.poll.Name
	}
	return slices.Values(names)
}

// Len returns the number of polls.
func (r *Registry) Len() int {
	return len(r.polls)
}

// Close releases every poll. Any later mutation returns ErrClosed.
func (r *Registry) Close() {
	for _, e := range r.polls {
		e.release()
	}
	r.polls = nil
	clear(r.byName)
	r.closed = true
}

func (r *Registry) lookup(name string) (*entry, error) {
	if r.closed {
		return nil, ErrClosed
	}
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPollNotFound, name)
	}
	return e, nil
}

func (e *entry) release() {
	clear(e.poll.Participants)
	e.poll.Participants = nil
	e.poll.SlotLabels = nil
	clear(e.parts)
}
