// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"slices"
	"testing"

	"github.com/danielhkuo/slot-poll/registry"
)

// SetupTestRegistry creates an empty registry that is closed when the test ends
func SetupTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New(registry.Options{})
	t.Cleanup(reg.Close)
	return reg
}

// CreateTestPoll inserts a poll and configures it when labels are given
func CreateTestPoll(t *testing.T, reg *registry.Registry, name string, slots int, labels ...string) {
	t.Helper()

	if err := reg.InsertNewPoll(name, slots); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	if len(labels) > 0 {
		if err := reg.ConfigurePoll(name, labels); err != nil {
			t.Fatalf("Failed to configure test poll: %v", err)
		}
	}
}

// AddTestParticipant adds a participant to a poll
func AddTestParticipant(t *testing.T, reg *registry.Registry, pollName, partName, availability string) {
	t.Helper()

	if err := reg.AddParticipant(pollName, partName, availability); err != nil {
		t.Fatalf("Failed to add test participant: %v", err)
	}
}

// PollNames collects the registry listing
func PollNames(reg *registry.Registry) []string {
	return slices.Collect(reg.ListPolls())
}

// ParticipantNames returns the ledger order for a poll
func ParticipantNames(t *testing.T, reg *registry.Registry, pollName string) []string {
	t.Helper()

	poll, ok := reg.FindPoll(pollName)
	if !ok {
		t.Fatalf("Poll %q not found", pollName)
	}
	names := make([]string, len(poll.Participants))
	for i, part := range poll.Participants {
		names[i] = part.Name
	}
	return names
}

// AssertEqualStrings fails the test when the two slices differ
func AssertEqualStrings(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
