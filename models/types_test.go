// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "testing"

func TestNewPoll(t *testing.T) {
	a := NewPoll("a", 3)
	b := NewPoll("b", 3)

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if a.Configured() {
		t.Error("Expected new poll to be unconfigured")
	}
	if a.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestLabel(t *testing.T) {
	p := NewPoll("p", 2)
	if got := p.Label(1); got != "slot 2" {
		t.Errorf("Expected positional label, got %q", got)
	}

	p.SlotLabels = []string{"Mon", "Tue"}
	if got := p.Label(1); got != "Tue" {
		t.Errorf("Expected Tue, got %q", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	comment := "hello"
	p := NewPoll("p", 1)
	p.SlotLabels = []string{"Mon"}
	p.Participants = []*Participant{{Name: "alice", Availability: "Y", Comment: &comment}}

	c := p.Clone()
	c.SlotLabels[0] = "Sun"
	c.Participants[0].Availability = "N"
	*c.Participants[0].Comment = "changed"

	if p.SlotLabels[0] != "Mon" {
		t.Error("Clone shares label storage")
	}
	if p.Participants[0].Availability != "Y" {
		t.Error("Clone shares participant storage")
	}
	if *p.Participants[0].Comment != "hello" {
		t.Error("Clone shares comment storage")
	}
}

func TestCloneUnconfigured(t *testing.T) {
	p := NewPoll("p", 2)
	c := p.Clone()
	if c.Configured() {
		t.Error("Clone of unconfigured poll should stay unconfigured")
	}
}

func TestFindParticipant(t *testing.T) {
	p := NewPoll("p", 1)
	p.Participants = []*Participant{{Name: "bob"}, {Name: "alice"}}

	if part := p.FindParticipant("alice"); part == nil || part.Name != "alice" {
		t.Errorf("Expected alice, got %v", part)
	}
	if part := p.FindParticipant("carol"); part != nil {
		t.Errorf("Expected nil, got %v", part)
	}
}
