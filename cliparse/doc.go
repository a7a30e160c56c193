// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - MaxPolls: Maximum number of polls (default: 0, unlimited)
  - MaxSlots: Maximum slots per poll (default: models.MaxSlotCount)
  - MaxParticipants: Maximum participants per poll (default: 0, unlimited)
  - LogLevel: debug, info, warn or error (default: info)
  - Prompt: Console prompt shown on terminals (default: "> ")

# CLI Flags

	-max-polls         Maximum number of polls
	-max-slots         Maximum slots per poll
	-max-participants  Maximum participants per poll
	-log-level         Log level
	-prompt            Console prompt
	-env-file          Dotenv file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	POLL_MAX_POLLS        → -max-polls
	POLL_MAX_SLOTS        → -max-slots
	POLL_MAX_PARTICIPANTS → -max-participants
	LOG_LEVEL             → -log-level
	POLL_PROMPT           → -prompt
	ENV_FILE              → -env-file

CLI flags take precedence over environment variables. The dotenv file is
loaded first and never overrides variables that are already set. A missing
.env in the working directory is ignored; a missing file named with
-env-file is an error.

# Validation

ParseFlags returns an error if:

  - a limit is negative
  - MaxSlots exceeds models.MaxSlotCount
  - LogLevel is not a slog level name

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	reg := registry.New(cfg.RegistryOptions())
*/
package cliparse
