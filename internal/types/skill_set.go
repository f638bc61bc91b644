//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
)

// SkillSet is a set of canonical skill names. Membership has no multiplicity;
// callers are expected to canonicalize names (case, synonyms) before insertion,
// so equality here is plain string equality.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from the given names.
func NewSkillSet(names ...string) SkillSet {
	s := make(SkillSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a skill name into the set. Empty names are ignored.
func (s SkillSet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether the set contains the given name.
func (s SkillSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of skills in the set.
func (s SkillSet) Len() int {
	return len(s)
}

// Sorted returns the skill names in ascending order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the skills present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for name := range s {
		if other.Has(name) {
			out.Add(name)
		}
	}
	return out
}

// Difference returns the skills present in s but not in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for name := range s {
		if !other.Has(name) {
			out.Add(name)
		}
	}
	return out
}

// Union returns the skills present in either set.
func (s SkillSet) Union(other SkillSet) SkillSet {
	out := make(SkillSet, len(s)+len(other))
	for name := range s {
		out.Add(name)
	}
	for name := range other {
		out.Add(name)
	}
	return out
}

// Equal reports whether both sets contain exactly the same skills.
func (s SkillSet) Equal(other SkillSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted JSON array for stable output.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of skill names into the set.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSkillSet(names...)
	return nil
}
