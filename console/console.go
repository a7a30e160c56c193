// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/danielhkuo/slot-poll/registry"
)

var (
	ErrQuit           = errors.New("quit")
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
)

type command struct {
	usage string
	run   func(h *Handler, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"create_poll":         {"create_poll <name> <slots>", (*Handler).CreatePoll},
		"configure_poll":      {"configure_poll <name> <label>...", (*Handler).ConfigurePoll},
		"delete_poll":         {"delete_poll <name>", (*Handler).DeletePoll},
		"list_polls":          {"list_polls", (*Handler).ListPolls},
		"add_participant":     {"add_participant <poll> <participant> <availability>", (*Handler).AddParticipant},
		"add_comment":         {"add_comment <poll> <participant> <comment...>", (*Handler).AddComment},
		"update_availability": {"update_availability <poll> <participant> <availability>", (*Handler).UpdateAvailability},
		"poll_info":           {"poll_info <name>", (*Handler).PollInfo},
		"stats":               {"stats", (*Handler).Stats},
		"help":                {"help", (*Handler).Help},
		"quit":                {"quit", func(*Handler, []string) error { return ErrQuit }},
	}
}

// Handler interprets console commands against a registry
type Handler struct {
	reg    *registry.Registry
	out    io.Writer
	Prompt string
}

func NewHandler(reg *registry.Registry, out io.Writer) *Handler {
	return &Handler{reg: reg, out: out}
}

// Execute runs a single command line. Blank lines and lines starting with
// '#' are ignored.
func (h *Handler) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	err := cmd.run(h, args)
	if errors.Is(err, ErrUsage) {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}
	return err
}

// Run reads commands from in until EOF, quit, or ctx is cancelled.
// Rejected commands are reported to the output and do not stop the loop.
func (h *Handler) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		h.printPrompt()

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			select {
			case err := <-readErr:
				return err
			default:
				return nil
			}
		}

		err := h.Execute(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			slog.Warn("command rejected", "command", line, "error", err)
			h.errorResponse(err)
		}
	}
}

func (h *Handler) printPrompt() {
	if h.Prompt != "" {
		fmt.Fprint(h.out, h.Prompt)
	}
}

// errorResponse writes a user-facing message for err
func (h *Handler) errorResponse(err error) {
	fmt.Fprintf(h.out, "Error: %s\n", message(err))
}

func message(err error) string {
	switch {
	case errors.Is(err, registry.ErrNameTooLong):
		return "Poll name is too long"
	case errors.Is(err, registry.ErrInvalidSlotCount):
		return "Number of slots must be positive"
	case errors.Is(err, registry.ErrDuplicateName):
		return "A poll by this name already exists"
	case errors.Is(err, registry.ErrPollNotFound):
		return "No poll by this name"
	case errors.Is(err, registry.ErrLabelCountMismatch):
		return "Number of labels does not match number of slots"
	case errors.Is(err, registry.ErrDuplicateParticipant):
		return "A participant by this name already exists in this poll"
	case errors.Is(err, registry.ErrParticipantNotFound):
		return "No participant by this name in this poll"
	case errors.Is(err, registry.ErrAvailabilityLengthMismatch):
		return "Availability string is the wrong length for this poll"
	case errors.Is(err, registry.ErrAllocationFailure):
		return "Out of room: " + err.Error()
	case errors.Is(err, registry.ErrClosed):
		return "Registry is closed"
	default:
		return err.Error()
	}
}
