package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusReview     TicketStatus = "review"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// StatusAll is the list filter value that keeps every status. It is never a
// valid ticket status.
const StatusAll = "all"

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusReview:     true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// Statuses lists every status in workflow order.
var Statuses = []TicketStatus{
	StatusOpen,
	StatusInProgress,
	StatusReview,
	StatusResolved,
	StatusClosed,
}

var statusLabelOverrides = map[TicketStatus]string{
	StatusReview: "In Review",
}

var titleCaser = cases.Title(language.English)

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// Label is the human-readable form, e.g. "In Progress".
func (ts TicketStatus) Label() string {
	if label, ok := statusLabelOverrides[ts]; ok {
		return label
	}
	return humanize(string(ts))
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

func humanize(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}
