// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// CreatePoll handles create_poll <name> <slots>
func (h *Handler) CreatePoll(args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	name := args[0]
	slots, err := strconv.Atoi(args[1])
	if err != nil {
		return ErrUsage
	}

	if err := h.reg.InsertNewPoll(name, slots); err != nil {
		return err
	}

	slog.Info("poll created", "poll", name, "slots", slots)
	fmt.Fprintf(h.out, "Poll %s created with %d slots\n", name, slots)
	return nil
}

// ConfigurePoll handles configure_poll <name> <label>...
func (h *Handler) ConfigurePoll(args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	name, labels := args[0], args[1:]

	if err := h.reg.ConfigurePoll(name, labels); err != nil {
		return err
	}

	slog.Info("poll configured", "poll", name, "labels", len(labels))
	fmt.Fprintf(h.out, "Poll %s configured\n", name)
	return nil
}

// DeletePoll handles delete_poll <name>
func (h *Handler) DeletePoll(args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	if err := h.reg.DeletePoll(args[0]); err != nil {
		return err
	}

	slog.Info("poll deleted", "poll", args[0])
	fmt.Fprintf(h.out, "Poll %s deleted\n", args[0])
	return nil
}

// ListPolls handles list_polls, printing one name per line
func (h *Handler) ListPolls(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	for name := range h.reg.ListPolls() {
		fmt.Fprintln(h.out, name)
	}
	return nil
}

// AddParticipant handles add_participant <poll> <participant> <availability>
func (h *Handler) AddParticipant(args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	pollName, partName, avail := args[0], args[1], args[2]

	if err := h.reg.AddParticipant(pollName, partName, avail); err != nil {
		return err
	}

	slog.Info("participant added", "poll", pollName, "participant", partName)
	fmt.Fprintf(h.out, "Participant %s added to %s\n", partName, pollName)
	return nil
}

// AddComment handles add_comment <poll> <participant> <comment...>
func (h *Handler) AddComment(args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	pollName, partName := args[0], args[1]
	comment := strings.Join(args[2:], " ")

	if err := h.reg.AddComment(pollName, partName, comment); err != nil {
		return err
	}

	slog.Info("comment set", "poll", pollName, "participant", partName)
	fmt.Fprintf(h.out, "Comment from %s saved\n", partName)
	return nil
}

// UpdateAvailability handles update_availability <poll> <participant> <availability>
func (h *Handler) UpdateAvailability(args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	pollName, partName, avail := args[0], args[1], args[2]

	if err := h.reg.UpdateAvailability(pollName, partName, avail); err != nil {
		return err
	}

	slog.Info("availability updated", "poll", pollName, "participant", partName)
	fmt.Fprintf(h.out, "Availability for %s updated\n", partName)
	return nil
}

// PollInfo handles poll_info <name>
func (h *Handler) PollInfo(args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	report, err := h.reg.ReportPoll(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(h.out, report)
	return nil
}

// Stats handles stats, summarizing the whole registry
func (h *Handler) Stats(args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	total := 0
	for name := range h.reg.ListPolls() {
		poll, ok := h.reg.FindPoll(name)
		if !ok {
			continue
		}
		total += len(poll.Participants)
		fmt.Fprintf(h.out, "%s  id=%s  participants=%s  created %s\n",
			poll.Name, poll.ID, humanize.Comma(int64(len(poll.Participants))), humanize.Time(poll.CreatedAt))
	}
	fmt.Fprintf(h.out, "%s polls, %s participants\n",
		humanize.Comma(int64(h.reg.Len())), humanize.Comma(int64(total)))
	return nil
}

// Help handles help
func (h *Handler) Help(args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintln(h.out, commands[name].usage)
	}
	return nil
}
