package constants

const (
	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderUserAgent   = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeySession   = "session"
	ContextKeyRequestID = "request_id"
	ContextKeyFlash     = "flash"

	// Ticket identifiers
	TicketIDPrefix = "TKT"
	TicketIDDigits = 3

	// Remote API paths, relative to backend.api_base_url
	APIPathTickets = "/tickets"
	APIPathTicket  = "/tickets/{id}"
	APIPathUsers   = "/users"
	APIPathUser    = "/users/{id}"

	// User-facing fallback messages
	ErrMsgSaveTicket   = "Failed to save ticket"
	ErrMsgLoadTickets  = "Failed to load tickets"
	ErrMsgLoadTicket   = "Failed to load ticket"
	ErrMsgDeleteTicket = "Failed to delete ticket"
	ErrMsgNotFound     = "Ticket not found"
	ErrMsgNoUser       = "Current user is not available"

	FlashTicketDeleted = "Ticket deleted"

	// Dashboard
	RecentTicketsLimit = 5
)
