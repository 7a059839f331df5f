package ticket

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
)

const (
	IDStrategyMonotonic = "monotonic"
	IDStrategyLength    = "length"
	IDStrategyUUID      = "uuid"
)

// IDGenerator hands out ticket ids. size is the current collection size and
// exists reports whether an id is taken. Callers serialize access.
type IDGenerator interface {
	Next(size int, exists func(id string) bool) (string, error)
	// Observe records an id already in the collection, e.g. from fixtures.
	Observe(id string)
}

// NewIDGenerator returns the generator for a configured strategy name.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategyMonotonic:
		return &MonotonicIDGenerator{}, nil
	case IDStrategyLength:
		return LengthIDGenerator{}, nil
	case IDStrategyUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// FormatID renders a sequence number as TKT-NNN.
func FormatID(n int) string {
	return fmt.Sprintf("%s-%0*d", constants.TicketIDPrefix, constants.TicketIDDigits, n)
}

// ParseID extracts the sequence number from a TKT-NNN id.
func ParseID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, constants.TicketIDPrefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MonotonicIDGenerator counts up from the highest id it has seen and never
// hands the same number out twice, even after deletes.
type MonotonicIDGenerator struct {
	mu   sync.Mutex
	last int
}

func (g *MonotonicIDGenerator) Observe(id string) {
	if n, ok := ParseID(id); ok {
		g.mu.Lock()
		if n > g.last {
			g.last = n
		}
		g.mu.Unlock()
	}
}

func (g *MonotonicIDGenerator) Next(_ int, exists func(string) bool) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		g.last++
		id := FormatID(g.last)
		if !exists(id) {
			return id, nil
		}
	}
}

// LengthIDGenerator numbers by collection size + 1. After a delete this can
// land on an id that is still in use; that case is refused with a conflict.
type LengthIDGenerator struct{}

func (LengthIDGenerator) Observe(string) {}

func (LengthIDGenerator) Next(size int, exists func(string) bool) (string, error) {
	id := FormatID(size + 1)
	if exists(id) {
		return "", errors.NewConflictError("ticket id already in use", id)
	}
	return id, nil
}

type UUIDGenerator struct{}

func (UUIDGenerator) Observe(string) {}

func (UUIDGenerator) Next(int, func(string) bool) (string, error) {
	return constants.TicketIDPrefix + "-" + uuid.NewString(), nil
}
