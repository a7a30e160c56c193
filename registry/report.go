// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/slot-poll/summary"
)

// ReportPoll renders the poll header, each participant in ledger order with
// its comment, and the availability summary.
func (r *Registry) ReportPoll(name string) (string, error) {
	e, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	p := e.poll

	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.SlotCount))
	b.WriteByte('\n')

	for _, part := range p.Participants {
		b.WriteString("Participant: ")
		b.WriteString(part.Name)
		b.WriteByte(' ')
		b.WriteString(part.Availability)
		b.WriteByte('\n')
		if part.Comment != nil {
			b.WriteString("  ")
			b.WriteString(*part.Comment)
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(summary.Summarize(p))
	return b.String(), nil
}
