// Package listview derives the displayed ticket table from the raw collection.
// Everything here is pure: same input, same ordered output, no I/O.
package listview

import (
	"cmp"
	"slices"
	"strings"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

type SortField string

const (
	SortByID        SortField = "id"
	SortByTitle     SortField = "title"
	SortByStatus    SortField = "status"
	SortByPriority  SortField = "priority"
	SortByAssignee  SortField = "assignee"
	SortByUpdatedAt SortField = "updatedAt"
)

var validSortFields = map[SortField]bool{
	SortByID:        true,
	SortByTitle:     true,
	SortByStatus:    true,
	SortByPriority:  true,
	SortByAssignee:  true,
	SortByUpdatedAt: true,
}

// SortFields lists the sortable columns in display order.
var SortFields = []SortField{SortByID, SortByTitle, SortByStatus, SortByPriority, SortByAssignee, SortByUpdatedAt}

func (f SortField) IsValid() bool {
	return validSortFields[f]
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Query is the user's current sort and filter choice. Status is a ticket
// status or "all".
type Query struct {
	Field     SortField
	Direction Direction
	Status    string
}

// DefaultQuery shows everything, most recently updated first.
func DefaultQuery() Query {
	return Query{Field: SortByUpdatedAt, Direction: Descending, Status: vo.StatusAll}
}

// ParseQuery builds a Query from raw request values. Unknown values fall back
// to the defaults field by field.
func ParseQuery(field, direction, status string) Query {
	q := DefaultQuery()
	if f := SortField(field); f.IsValid() {
		q.Field = f
		q.Direction = Ascending
	}
	switch Direction(strings.ToLower(direction)) {
	case Ascending:
		q.Direction = Ascending
	case Descending:
		q.Direction = Descending
	}
	if s := vo.TicketStatus(status); s.IsValid() {
		q.Status = string(s)
	}
	return q
}

// Toggle selects field. Selecting the active field flips the direction; any
// other field starts ascending. The status filter is kept.
func (q Query) Toggle(field SortField) Query {
	if field == q.Field {
		if q.Direction == Ascending {
			q.Direction = Descending
		} else {
			q.Direction = Ascending
		}
		return q
	}
	q.Field = field
	q.Direction = Ascending
	return q
}

// Filter keeps the tickets whose status matches, or all of them for "all".
func Filter(tickets []*ticket.Ticket, status string) []*ticket.Ticket {
	out := make([]*ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if status == "" || status == vo.StatusAll || string(t.Status()) == status {
			out = append(out, t)
		}
	}
	return out
}

// Sort orders tickets in place by field and direction. Ties keep their
// prior relative order.
func Sort(tickets []*ticket.Ticket, field SortField, dir Direction) {
	compare := comparator(field)
	slices.SortStableFunc(tickets, func(a, b *ticket.Ticket) int {
		if dir == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

// Project filters then sorts, returning a new slice. The input is not modified.
func Project(tickets []*ticket.Ticket, q Query) []*ticket.Ticket {
	out := Filter(tickets, q.Status)
	Sort(out, q.Field, q.Direction)
	return out
}

func comparator(field SortField) func(a, b *ticket.Ticket) int {
	switch field {
	case SortByID:
		return func(a, b *ticket.Ticket) int { return strings.Compare(a.ID(), b.ID()) }
	case SortByTitle:
		return func(a, b *ticket.Ticket) int { return strings.Compare(a.Title(), b.Title()) }
	case SortByStatus:
		return func(a, b *ticket.Ticket) int { return strings.Compare(string(a.Status()), string(b.Status())) }
	case SortByPriority:
		return func(a, b *ticket.Ticket) int { return strings.Compare(string(a.Priority()), string(b.Priority())) }
	case SortByAssignee:
		// Unassigned tickets have an empty name and so sort first.
		return func(a, b *ticket.Ticket) int { return strings.Compare(a.AssigneeName(), b.AssigneeName()) }
	default:
		return func(a, b *ticket.Ticket) int { return cmp.Compare(a.UpdatedAt().UnixNano(), b.UpdatedAt().UnixNano()) }
	}
}
