// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/slot-poll/cliparse"
	"github.com/danielhkuo/slot-poll/console"
	"github.com/danielhkuo/slot-poll/registry"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	// Create registry
	reg := registry.New(cfg.RegistryOptions())
	defer reg.Close()

	h := console.NewHandler(reg, os.Stdout)
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		h.Prompt = cfg.Prompt
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
	}()

	slog.Info("Registry ready", "max_polls", cfg.MaxPolls, "max_slots", cfg.MaxSlots)
	err = h.Run(ctx, os.Stdin)
	if err != nil && err != context.Canceled {
		slog.Error("Console stopped", "error", err)
	} else {
		slog.Info("Console stopped", "polls", reg.Len())
	}
}
