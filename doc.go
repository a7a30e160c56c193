// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the slot-poll console.

slot-poll keeps scheduling polls in memory: each poll has a fixed set of time
slots, and participants mark each slot Yes, No or Maybe. Commands are read
one per line from standard input.

# Starting the Console

	go run .

Or with limits:

	go run . -max-polls 50 -max-participants 200 -log-level debug

Or scripted:

	go run . < commands.txt

# Configuration

All settings are optional:

  - POLL_MAX_POLLS (-max-polls): Maximum number of polls
  - POLL_MAX_SLOTS (-max-slots): Maximum slots per poll
  - POLL_MAX_PARTICIPANTS (-max-participants): Maximum participants per poll
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - POLL_PROMPT (-prompt): Prompt shown when stdin is a terminal

A .env file in the working directory is loaded if present.

# Architecture

  - models: Poll and Participant records
  - registry: Poll registry, participant ledgers and reports
  - summary: Per-slot vote tallies
  - console: Command parsing and dispatch
  - cliparse: Configuration parsing

Nothing is persisted; the registry is discarded when the process exits.
*/
package main
