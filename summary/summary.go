// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package summary

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/slot-poll/models"
)

const Header = "Availability summary:\n"

// SlotTally holds the vote counts for one slot
type SlotTally struct {
	Label string
	Yes   int
	No    int
	Maybe int
}

// Tally counts Y, N and M votes per slot across all participants.
// Other characters count toward nothing.
func Tally(p *models.Poll) []SlotTally {
	tallies := make([]SlotTally, p.SlotCount)
	for i := range tallies {
		tallies[i].Label = p.Label(i)
	}

	for _, part := range p.Participants {
		// Availability length is enforced on write; bound by both anyway
		n := min(len(part.Availability), p.SlotCount)
		for i := 0; i < n; i++ {
			switch part.Availability[i] {
			case models.VoteYes:
				tallies[i].Yes++
			case models.VoteNo:
				tallies[i].No++
			case models.VoteMaybe:
				tallies[i].Maybe++
			}
		}
	}

	return tallies
}

// Summarize renders the header followed by one line per slot:
//
//	Mon: Y:1 N:0 M:1
func Summarize(p *models.Poll) string {
	tallies := Tally(p)

	var b strings.Builder
	b.Grow(Size(tallies))
	b.WriteString(Header)
	for _, t := range tallies {
		b.WriteString(t.Label)
		b.WriteString(": Y:")
		b.WriteString(strconv.Itoa(t.Yes))
		b.WriteString(" N:")
		b.WriteString(strconv.Itoa(t.No))
		b.WriteString(" M:")
		b.WriteString(strconv.Itoa(t.Maybe))
		b.WriteByte('\n')
	}
	return b.String()
}

// Size returns the exact length in bytes of the rendered summary.
func Size(tallies []SlotTally) int {
	size := len(Header)
	for _, t := range tallies {
		size += len(t.Label) + len(": Y:") + digits(t.Yes) +
			len(" N:") + digits(t.No) + len(" M:") + digits(t.Maybe) + 1
	}
	return size
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
