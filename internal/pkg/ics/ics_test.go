package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "20260208T090000Z", FormatDateTime(ts))

	// non-UTC input is converted, not reinterpreted
	loc := time.FixedZone("UTC+1", 3600)
	assert.Equal(t, "20260208T080000Z", FormatDateTime(time.Date(2026, 2, 8, 9, 0, 0, 0, loc)))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `Sprint planning\, Q1\; kickoff`, EscapeText("Sprint planning, Q1; kickoff"))
	assert.Equal(t, `line one\nline two`, EscapeText("line one\nline two"))
	assert.Equal(t, `back\\slash`, EscapeText(`back\slash`))
}

func TestRender(t *testing.T) {
	cal := Calendar{
		Name:   "Team calendar",
		ProdID: "-//Evidencija//Calendar Export//SR",
		Events: []Event{
			{
				UID:         "activity-1@evidencija",
				Start:       time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC),
				End:         time.Date(2026, 2, 8, 10, 30, 0, 0, time.UTC),
				Summary:     "Standup, daily",
				Description: "Room 4",
			},
			{
				UID:     "activity-2@evidencija",
				Start:   time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
				End:     time.Date(2026, 2, 9, 13, 0, 0, 0, time.UTC),
				Summary: "Lunch",
			},
		},
	}

	out := cal.Render(time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC))
	lines := strings.Split(out, "\r\n")

	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, lines, "VERSION:2.0")
	assert.Contains(t, lines, "X-WR-CALNAME:Team calendar")
	assert.Contains(t, lines, "UID:activity-1@evidencija")
	assert.Contains(t, lines, "DTSTART:20260208T090000Z")
	assert.Contains(t, lines, "DTEND:20260208T103000Z")
	assert.Contains(t, lines, `SUMMARY:Standup\, daily`)
	assert.Contains(t, lines, "DESCRIPTION:Room 4")
	assert.Contains(t, lines, "DTSTAMP:20260210T080000Z")

	// event without description must not emit an empty DESCRIPTION line
	assert.NotContains(t, out, "DESCRIPTION:\r\nEND:VEVENT")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}
