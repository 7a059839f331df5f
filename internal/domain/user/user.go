package user

import (
	"fmt"
	"strings"
	"time"
)

// User is a directory entry. Tickets reference users by id and may embed a
// copy as a denormalized snapshot.
type User struct {
	id        string
	name      string
	email     string
	avatarURL string
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructUser(id, name, email, avatarURL string, createdAt, updatedAt time.Time) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("user name is required")
	}
	return &User{
		id:        id,
		name:      name,
		email:     email,
		avatarURL: avatarURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) AvatarURL() string {
	return u.avatarURL
}

func (u *User) HasAvatar() bool {
	return u.avatarURL != ""
}

// Initials returns up to two leading letters of the name, used when no avatar is set.
func (u *User) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(u.name) {
		r := []rune(part)
		b.WriteRune(r[0])
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Clone returns an independent copy, nil-safe.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
