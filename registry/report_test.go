// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry_test

import (
	"errors"
	"testing"

	"github.com/danielhkuo/slot-poll/registry"
	"github.com/danielhkuo/slot-poll/testutil"
)

func TestReportPoll(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	testutil.CreateTestPoll(t, reg, "standup", 2, "Mon", "Tue")
	testutil.AddTestParticipant(t, reg, "standup", "alice", "YN")
	testutil.AddTestParticipant(t, reg, "standup", "bob", "MY")
	if err := reg.AddComment("standup", "alice", "mornings only"); err != nil {
		t.Fatal(err)
	}

	report, err := reg.ReportPoll("standup")
	if err != nil {
		t.Fatalf("ReportPoll failed: %v", err)
	}

	expected := "standup 2\n" +
		"Participant: bob MY\n" +
		"Participant: alice YN\n" +
		"  mornings only\n" +
		"\n" +
		"Availability summary:\n" +
		"Mon: Y:1 N:0 M:1\n" +
		"Tue: Y:1 N:1 M:0\n"
	if report != expected {
		t.Errorf("Unexpected report.\nExpected:\n%s\nGot:\n%s", expected, report)
	}
}

func TestReportUnconfiguredPoll(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	testutil.CreateTestPoll(t, reg, "draft", 2)

	report, err := reg.ReportPoll("draft")
	if err != nil {
		t.Fatalf("ReportPoll failed: %v", err)
	}

	expected := "draft 2\n" +
		"\n" +
		"Availability summary:\n" +
		"slot 1: Y:0 N:0 M:0\n" +
		"slot 2: Y:0 N:0 M:0\n"
	if report != expected {
		t.Errorf("Unexpected report.\nExpected:\n%s\nGot:\n%s", expected, report)
	}
}

func TestReportPollNotFound(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)

	report, err := reg.ReportPoll("missing")
	if !errors.Is(err, registry.ErrPollNotFound) {
		t.Fatalf("Expected ErrPollNotFound, got %v", err)
	}
	if report != "" {
		t.Errorf("Expected empty report, got %q", report)
	}
}
