// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package summary tallies per-slot votes for a poll and renders them as text.
package summary
