package session

import "strings"

// SectionID names one of the mutually exclusive page sections.
type SectionID string

const (
	SectionHome           SectionID = "home"
	SectionAbout          SectionID = "about"
	SectionProjects       SectionID = "projects"
	SectionResume         SectionID = "resume"
	SectionCertifications SectionID = "certifications"
	SectionContact        SectionID = "contact"
)

// Sections returns every section in menu order.
func Sections() []SectionID {
	return []SectionID{
		SectionHome,
		SectionAbout,
		SectionProjects,
		SectionResume,
		SectionCertifications,
		SectionContact,
	}
}

// Valid reports whether id is a known section.
func (id SectionID) Valid() bool {
	for _, s := range Sections() {
		if s == id {
			return true
		}
	}
	return false
}

// ParseSectionID normalizes user input. Unknown input yields the empty ID,
// which callers treat as "no selection".
func ParseSectionID(s string) SectionID {
	id := SectionID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return ""
	}
	return id
}

// Resolve picks the section for a render pass: the explicit selection, then
// the previous one, then home.
func Resolve(selected, previous SectionID) SectionID {
	if selected.Valid() {
		return selected
	}
	if previous.Valid() {
		return previous
	}
	return SectionHome
}
