// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the poll and participant records held by the registry.

# Domain Types

  - Poll: a named scheduling proposal with a fixed number of slots
  - Participant: a named respondent holding one vote character per slot

A poll starts unconfigured (SlotLabels is nil). Once configured it carries
exactly SlotCount labels. Participants are kept most recent first.

# Votes

Each availability character is one vote:

	VoteYes   = 'Y'
	VoteNo    = 'N'
	VoteMaybe = 'M'

Any other character is stored as given and counts as no vote.

# Constants

	MaxNameLen   = 32    // bytes, poll names
	MaxSlotCount = 1024  // slots per poll

# Copies

Clone returns a deep copy. The registry hands out clones so callers can read
a poll without being able to change the registry behind its back.
*/
package models
