package valueobjects

import "strings"

// TagSet is an ordered sequence of unique tags. Insertion order is kept and
// duplicates (exact, case-sensitive match) are dropped.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set from tags, trimming each and skipping blanks and repeats.
func NewTagSet(tags ...string) TagSet {
	var s TagSet
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Add trims tag and appends it. It reports false when the tag is blank or already present.
func (s *TagSet) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.Contains(tag) {
		return false
	}
	s.tags = append(s.tags, tag)
	return true
}

func (s *TagSet) Remove(tag string) bool {
	for i, t := range s.tags {
		if t == tag {
			s.tags = append(s.tags[:i:i], s.tags[i+1:]...)
			return true
		}
	}
	return false
}

func (s TagSet) Contains(tag string) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s TagSet) Len() int {
	return len(s.tags)
}

// Values returns a copy of the tags in insertion order. It never returns nil.
func (s TagSet) Values() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}
