// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds scheduling polls and their participants in memory.

# Lifecycle

A Registry is created once, handed to whatever drives it, and torn down
with Close:

	reg := registry.New(registry.Options{MaxPolls: 100})
	defer reg.Close()

It is owned by a single caller and is not safe for concurrent use.

# Polls

Polls are kept in insertion order and indexed by name:

	reg.InsertNewPoll("standup", 3)
	reg.ConfigurePoll("standup", []string{"Mon", "Tue", "Wed"})
	reg.DeletePoll("standup")

	for name := range reg.ListPolls() {
		fmt.Println(name)
	}

FindPoll and FindParticipant return copies; changing them does not change
the registry.

# Participants

Each poll owns a ledger of participants, newest first:

	reg.AddParticipant("standup", "alice", "YNM")
	reg.AddComment("standup", "alice", "late on Wednesday")
	reg.UpdateAvailability("standup", "alice", "YYM")

Availability must be exactly one character per slot. Characters other than
Y, N and M are stored but not counted.

# Reports

ReportPoll renders the poll, its participants and the availability summary:

	standup 3
	Participant: alice YYM
	  late on Wednesday

	Availability summary:
	Mon: Y:1 N:0 M:0
	Tue: Y:1 N:0 M:0
	Wed: Y:0 N:0 M:1

# Errors

Every failure is one of the sentinel errors, wrapped with detail:

	if errors.Is(err, registry.ErrDuplicateName) { ... }

A failed call leaves the registry exactly as it was. Requests beyond the
limits in Options fail with ErrAllocationFailure instead of allocating.
*/
package registry
