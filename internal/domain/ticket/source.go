package ticket

import "context"

// Source is the single ticket contract. The remote gateway and the local
// store implement it; a process runs exactly one of them.
type Source interface {
	List(ctx context.Context) (*Page, error)
	Get(ctx context.Context, id string) (*Ticket, error)
	Create(ctx context.Context, in CreateInput) (*Ticket, error)
	Update(ctx context.Context, id string, patch Patch) (*Ticket, error)
	// Delete returns a not found error when nothing was removed.
	Delete(ctx context.Context, id string) error
}

// Page is one list response. Meta comes from whoever owns the data and is
// passed through untouched.
type Page struct {
	Tickets []*Ticket
	Meta    PageMeta
}

type PageMeta struct {
	TotalCount      int `json:"totalCount"`
	Page            int `json:"page"`
	Limit           int `json:"limit"`
	TotalPages      int `json:"totalPages"`
	OpenCount       int `json:"openCount"`
	InProgressCount int `json:"inProgressCount"`
	ResolvedCount   int `json:"resolvedCount"`
}
