package ics

import (
	"strings"
	"time"
)

// Event is a single VEVENT entry.
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
}

// Calendar renders to an RFC 5545 VCALENDAR document.
type Calendar struct {
	Name   string
	ProdID string
	Events []Event
}

// FormatDateTime renders a timestamp as an ICS UTC datetime (20260208T090000Z).
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	",", `\,`,
	";", `\;`,
)

// EscapeText applies the minimal TEXT escaping required by RFC 5545 §3.3.11.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// Render serializes the calendar with CRLF line endings.
func (c Calendar) Render(now time.Time) string {
	stamp := FormatDateTime(now)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + c.ProdID,
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:" + EscapeText(c.Name),
	}

	for _, ev := range c.Events {
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+ev.UID,
			"DTSTAMP:"+stamp,
			"DTSTART:"+FormatDateTime(ev.Start),
			"DTEND:"+FormatDateTime(ev.End),
			"SUMMARY:"+EscapeText(ev.Summary),
		)
		if ev.Description != "" {
			lines = append(lines, "DESCRIPTION:"+EscapeText(ev.Description))
		}
		lines = append(lines, "END:VEVENT")
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}
