package content

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every malformed field found in a Data set.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid content: %s", strings.Join(e.Fields, "; "))
}

// Store serves validated, read-only content. Slices returned by its methods
// are copies; callers may not change the store through them.
type Store struct {
	data Data
}

// New validates data and wraps it in a Store.
func New(data Data) (*Store, error) {
	if err := validator.New().Struct(data); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validate content: %w", err)
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
		return nil, &ValidationError{Fields: fields}
	}
	return &Store{data: data}, nil
}

// MustDefault returns the published content and panics if it is malformed.
// The content is compiled in, so a panic here is a build-time mistake.
func MustDefault() *Store {
	s, err := New(Default)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) Profile() Profile { return s.data.Profile }

func (s *Store) Glance() []string { return clone(s.data.Glance) }

func (s *Store) NavCards() []NavCard { return clone(s.data.NavCards) }

func (s *Store) Highlights() []string { return clone(s.data.Highlights) }

func (s *Store) Summary() []string { return clone(s.data.Summary) }

func (s *Store) Education() []Education { return clone(s.data.Education) }

func (s *Store) SkillGroups() []SkillGroup {
	groups := clone(s.data.SkillGroups)
	for i := range groups {
		groups[i].Items = clone(groups[i].Items)
	}
	return groups
}

// SkillLevels returns proficiencies in their fixed display order.
func (s *Store) SkillLevels() []SkillLevel { return clone(s.data.SkillLevels) }

// Projects returns projects in their fixed display order.
func (s *Store) Projects() []Project {
	projects := clone(s.data.Projects)
	for i := range projects {
		projects[i].Features = clone(projects[i].Features)
		projects[i].Links = clone(projects[i].Links)
	}
	return projects
}

// Certifications returns certifications in their fixed display order.
func (s *Store) Certifications() []Certification { return clone(s.data.Certifications) }

func (s *Store) Pursuing() []string { return clone(s.data.Pursuing) }

func (s *Store) ResumeHighlights() []string { return clone(s.data.ResumeHighlights) }

func (s *Store) ContactLinks() []ContactLink { return clone(s.data.ContactLinks) }

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
