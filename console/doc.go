// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console drives a registry from line-oriented text commands.

# Commands

	create_poll <name> <slots>
	configure_poll <name> <label>...
	delete_poll <name>
	list_polls
	add_participant <poll> <participant> <availability>
	add_comment <poll> <participant> <comment...>
	update_availability <poll> <participant> <availability>
	poll_info <name>
	stats
	help
	quit

Blank lines and lines starting with # are skipped.

# Running

	h := console.NewHandler(reg, os.Stdout)
	h.Prompt = "> "
	err := h.Run(ctx, os.Stdin)

Run stops at end of input, on quit, or when ctx is cancelled. A rejected
command is logged, reported as "Error: ..." and the loop carries on.
*/
package console
