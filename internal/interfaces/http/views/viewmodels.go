package views

import (
	"net/url"

	"ticketdesk/internal/application/ticket/listview"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// Option is one entry of a select box.
type Option struct {
	Value string
	Label string
}

// StatusOptions lists every status. withAll prepends the "All" filter entry.
func StatusOptions(withAll bool) []Option {
	opts := make([]Option, 0, len(vo.Statuses)+1)
	if withAll {
		opts = append(opts, Option{Value: vo.StatusAll, Label: "All"})
	}
	for _, s := range vo.Statuses {
		opts = append(opts, Option{Value: string(s), Label: s.Label()})
	}
	return opts
}

func PriorityOptions() []Option {
	opts := make([]Option, 0, len(vo.Priorities))
	for _, p := range vo.Priorities {
		opts = append(opts, Option{Value: string(p), Label: p.Label()})
	}
	return opts
}

// SortHeader is a clickable list column.
type SortHeader struct {
	Field     string
	Label     string
	URL       string
	Active    bool
	Direction string
}

var sortLabels = map[listview.SortField]string{
	listview.SortByID:        "ID",
	listview.SortByTitle:     "Title",
	listview.SortByStatus:    "Status",
	listview.SortByPriority:  "Priority",
	listview.SortByAssignee:  "Assignee",
	listview.SortByUpdatedAt: "Updated",
}

// SortHeaders builds the column links for q. Each link carries the query
// that clicking it produces, so the toggle happens on the next request.
func SortHeaders(q listview.Query) []SortHeader {
	headers := make([]SortHeader, 0, len(listview.SortFields))
	for _, f := range listview.SortFields {
		headers = append(headers, SortHeader{
			Field:     string(f),
			Label:     sortLabels[f],
			URL:       ListURL(q.Toggle(f)),
			Active:    f == q.Field,
			Direction: string(q.Direction),
		})
	}
	return headers
}

// ListURL encodes q as a /tickets link.
func ListURL(q listview.Query) string {
	v := url.Values{}
	v.Set("sort", string(q.Field))
	v.Set("dir", string(q.Direction))
	v.Set("status", q.Status)
	return "/tickets?" + v.Encode()
}
