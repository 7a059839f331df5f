package localstore

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/utils"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Ago is a duration before process start. It accepts Go durations ("8h")
// and whole days ("5d").
type Ago time.Duration

func (a *Ago) UnmarshalYAML(node *yaml.Node) error {
	d, err := parseAgo(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = Ago(d)
	return nil
}

func parseAgo(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}

type userFixture struct {
	ID     string `yaml:"id" validate:"required"`
	Name   string `yaml:"name" validate:"required"`
	Email  string `yaml:"email" validate:"omitempty,email"`
	Avatar string `yaml:"avatar" validate:"omitempty,url"`
}

type ticketFixture struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Priority    string   `yaml:"priority"`
	AssignedTo  string   `yaml:"assigned_to"`
	CreatedBy   string   `yaml:"created_by"`
	CreatedAgo  Ago      `yaml:"created_ago"`
	UpdatedAgo  Ago      `yaml:"updated_ago"`
	Tags        []string `yaml:"tags"`
}

type fixtureFile struct {
	Users   []userFixture   `yaml:"users"`
	Tickets []ticketFixture `yaml:"tickets"`
}

// Fixtures is the decoded seed data, with times resolved against a reference instant.
type Fixtures struct {
	Users   []*user.User
	Tickets []*ticket.Ticket
}

// DefaultFixtures decodes the embedded seed file.
func DefaultFixtures(now time.Time) (*Fixtures, error) {
	return ParseFixtures(defaultFixtures, now)
}

// LoadFixtures reads a seed file from disk, or the embedded one when path is empty.
func LoadFixtures(path string, now time.Time) (*Fixtures, error) {
	if path == "" {
		return DefaultFixtures(now)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return ParseFixtures(data, now)
}

func ParseFixtures(data []byte, now time.Time) (*Fixtures, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	out := &Fixtures{}
	for _, uf := range file.Users {
		if err := utils.ValidateStruct(uf); err != nil {
			return nil, fmt.Errorf("fixture user %q: %w", uf.ID, err)
		}
		u, err := user.ReconstructUser(uf.ID, uf.Name, uf.Email, uf.Avatar, now, now)
		if err != nil {
			return nil, fmt.Errorf("fixture user %q: %w", uf.ID, err)
		}
		out.Users = append(out.Users, u)
	}

	seen := make(map[string]bool, len(file.Tickets))
	for _, tf := range file.Tickets {
		if seen[tf.ID] {
			return nil, fmt.Errorf("fixture ticket %q: duplicate id", tf.ID)
		}
		seen[tf.ID] = true

		t, err := ticket.ReconstructTicket(
			tf.ID,
			tf.Title,
			tf.Description,
			vo.TicketStatus(tf.Status),
			vo.Priority(tf.Priority),
			tf.AssignedTo,
			tf.CreatedBy,
			tf.Tags,
			now.Add(-time.Duration(tf.CreatedAgo)),
			now.Add(-time.Duration(tf.UpdatedAgo)),
		)
		if err != nil {
			return nil, fmt.Errorf("fixture ticket %q: %w", tf.ID, err)
		}
		out.Tickets = append(out.Tickets, t)
	}

	return out, nil
}
