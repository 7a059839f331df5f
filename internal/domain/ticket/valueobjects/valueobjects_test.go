package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{name: "open", input: "open", want: StatusOpen},
		{name: "in progress", input: "in_progress", want: StatusInProgress},
		{name: "review", input: "review", want: StatusReview},
		{name: "resolved", input: "resolved", want: StatusResolved},
		{name: "closed", input: "closed", want: StatusClosed},
		{name: "all is a filter not a status", input: StatusAll, wantErr: true},
		{name: "case sensitive", input: "Open", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid ticket status")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTicketStatus_Label(t *testing.T) {
	assert.Equal(t, "Open", StatusOpen.Label())
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "In Review", StatusReview.Label())
	assert.Equal(t, "Resolved", StatusResolved.Label())
	assert.Len(t, Statuses, len(validTicketStatuses))
}

func TestNewPriority(t *testing.T) {
	for _, p := range Priorities {
		got, err := NewPriority(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := NewPriority("urgent")
	assert.Error(t, err)
	assert.Equal(t, "Critical", PriorityCritical.Label())
}

func TestTagSet_AddRejectsBlankAndDuplicates(t *testing.T) {
	var s TagSet

	assert.True(t, s.Add("bug"))
	assert.False(t, s.Add("bug"))
	assert.False(t, s.Add("  bug  "))
	assert.False(t, s.Add("   "))
	assert.True(t, s.Add("Bug"))
	assert.True(t, s.Add(" frontend "))

	assert.Equal(t, []string{"bug", "Bug", "frontend"}, s.Values())
}

func TestTagSet_RemoveKeepsOrder(t *testing.T) {
	s := NewTagSet("a", "b", "c", "b")
	require.Equal(t, 3, s.Len())

	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, s.Values())
}

func TestTagSet_ValuesIsACopy(t *testing.T) {
	s := NewTagSet("a")
	v := s.Values()
	v[0] = "mutated"

	assert.Equal(t, []string{"a"}, s.Values())
	assert.NotNil(t, NewTagSet().Values())
}
