// Package view turns a section selection and session into a typed page
// model. Templates in the server package render it; nothing here produces
// markup.
package view

import (
	"github.com/priyanka7411/portfolio/internal/contact"
	"github.com/priyanka7411/portfolio/internal/content"
	"github.com/priyanka7411/portfolio/internal/session"
)

// Document is one rendered page. Exactly one of the section fields is set.
type Document struct {
	Title   string
	Active  session.SectionID
	Menu    []MenuItem
	Visits  int
	Profile content.Profile
	Year    int

	Home           *HomeView
	About          *AboutView
	Projects       *ProjectsView
	Resume         *ResumeView
	Certifications *CertificationsView
	Contact        *ContactView
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	ID     session.SectionID
	Label  string
	Icon   string
	Active bool
}

type HomeView struct {
	Name     string
	Headline string
	Tagline  string
	Glance   []string
	Cards    []content.NavCard
}

type AboutView struct {
	Intro       string
	Highlights  []string
	Summary     []string
	Education   []content.Education
	SkillGroups []content.SkillGroup
	SkillLevels []content.SkillLevel
	Statement   string
}

type ProjectsView struct {
	Projects  []content.Project
	GitHubURL string
}

// ResumeView describes the resume section. When Available is false, Error
// and FallbackURL explain what happened and where to look instead.
type ResumeView struct {
	CurrentAsOf string
	Available   bool
	FileName    string
	Encoded     string
	DownloadURL string
	Highlights  []string
	Error       string
	FallbackURL string
}

type CertificationsView struct {
	Certifications []content.Certification
	Pursuing       []string
}

type ContactView struct {
	Email    string
	Location string
	Remote   string
	Twitter  string
	Links    []content.ContactLink
	Form     FormView
}

// FormView is the contact form as it should be drawn.
type FormView struct {
	Fields   contact.Submission
	Subjects []contact.Subject
	Notice   string
	// NoticeKind is "success", "warning" or "error"; empty when there is no notice.
	NoticeKind string
}

// Section reports which section the document carries.
func (d Document) Section() session.SectionID {
	switch {
	case d.Home != nil:
		return session.SectionHome
	case d.About != nil:
		return session.SectionAbout
	case d.Projects != nil:
		return session.SectionProjects
	case d.Resume != nil:
		return session.SectionResume
	case d.Certifications != nil:
		return session.SectionCertifications
	case d.Contact != nil:
		return session.SectionContact
	default:
		return ""
	}
}
