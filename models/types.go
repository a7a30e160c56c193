// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Limits
const (
	// MaxNameLen is the longest poll name, in bytes, the registry accepts.
	MaxNameLen = 32

	// MaxSlotCount is the hard ceiling on slots per poll.
	MaxSlotCount = 1024
)

// Vote characters
const (
	VoteYes   = 'Y'
	VoteNo    = 'N'
	VoteMaybe = 'M'
)

// Domain types

type Poll struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SlotCount int       `json:"slot_count"`
	CreatedAt time.Time `json:"created_at"`

	// nil until the poll is configured
	SlotLabels []string `json:"slot_labels,omitempty"`

	// Most recently added first
	Participants []*Participant `json:"participants"`
}

type Participant struct {
	Name         string  `json:"name"`
	Availability string  `json:"availability"`
	Comment      *string `json:"comment,omitempty"`
}

// NewPoll returns an unconfigured poll with no participants.
func NewPoll(name string, slotCount int) *Poll {
	return &Poll{
		ID:        uuid.NewString(),
		Name:      name,
		SlotCount: slotCount,
		CreatedAt: time.Now(),
	}
}

// Configured reports whether slot labels have been set.
func (p *Poll) Configured() bool {
	return p.SlotLabels != nil
}

// Label returns the label for slot i, or a positional name when the poll
// has not been configured.
func (p *Poll) Label(i int) string {
	if i < len(p.SlotLabels) {
		return p.SlotLabels[i]
	}
	return "slot " + strconv.Itoa(i+1)
}

// FindParticipant returns the participant with this name, or nil.
func (p *Poll) FindParticipant(name string) *Participant {
	for _, part := range p.Participants {
		if part.Name == name {
			return part
		}
	}
	return nil
}

// Clone returns a deep copy of the poll and its participants.
func (p *Poll) Clone() Poll {
	c := *p
	c.SlotLabels = slices.Clone(p.SlotLabels)
	c.Participants = make([]*Participant, len(p.Participants))
	for i, part := range p.Participants {
		cp := part.Clone()
		c.Participants[i] = &cp
	}
	return c
}

// Clone returns a copy of the participant that shares no storage with it.
func (pt *Participant) Clone() Participant {
	c := *pt
	if pt.Comment != nil {
		comment := *pt.Comment
		c.Comment = &comment
	}
	return c
}
