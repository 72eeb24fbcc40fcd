package view

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/priyanka7411/portfolio/internal/assets"
	"github.com/priyanka7411/portfolio/internal/contact"
	"github.com/priyanka7411/portfolio/internal/content"
	"github.com/priyanka7411/portfolio/internal/session"
)

// AssetLoader loads a file for embedding.
type AssetLoader interface {
	Load(path string) (assets.Asset, error)
}

var menuLabels = map[session.SectionID]struct{ label, icon string }{
	session.SectionHome:           {"Home", "🏠"},
	session.SectionAbout:          {"About Me", "👩‍💼"},
	session.SectionProjects:       {"Projects", "📁"},
	session.SectionResume:         {"Resume", "📄"},
	session.SectionCertifications: {"Certifications", "📜"},
	session.SectionContact:        {"Contact", "📬"},
}

// Router maps a section selection to a Document.
type Router struct {
	content    *content.Store
	assets     AssetLoader
	resumePath string
	now        func() time.Time
	logger     *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithClock overrides time.Now for the footer year and resume date.
func WithClock(now func() time.Time) RouterOption {
	return func(r *Router) { r.now = now }
}

// WithLogger sets the router logger.
func WithLogger(l *slog.Logger) RouterOption {
	return func(r *Router) { r.logger = l }
}

// NewRouter creates a Router serving the resume at resumePath.
func NewRouter(store *content.Store, loader AssetLoader, resumePath string, opts ...RouterOption) *Router {
	r := &Router{
		content:    store,
		assets:     loader,
		resumePath: resumePath,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render performs one render pass: it counts the visit, resolves the
// section (falling back to the previous selection, then home) and builds
// that section only. The returned session must replace sess.
func (r *Router) Render(selected session.SectionID, sess session.Session) (Document, session.Session) {
	visits := sess.Visits.Increment()
	active := session.Resolve(selected, sess.Selected)
	sess.Selected = active

	profile := r.content.Profile()
	doc := Document{
		Title:   profile.Name + " Portfolio",
		Active:  active,
		Menu:    menu(active),
		Visits:  visits,
		Profile: profile,
		Year:    r.now().Year(),
	}

	switch active {
	case session.SectionAbout:
		doc.About = r.about()
	case session.SectionProjects:
		doc.Projects = r.projects()
	case session.SectionResume:
		doc.Resume = r.resume()
	case session.SectionCertifications:
		doc.Certifications = r.certifications()
	case session.SectionContact:
		doc.Contact = r.contact(sess.Contact)
		// The notice is shown once; the draft stays.
		sess.Contact.Outcome = contact.OutcomeNone
	default:
		doc.Home = r.home()
	}

	return doc, sess
}

func menu(active session.SectionID) []MenuItem {
	items := make([]MenuItem, 0, len(session.Sections()))
	for _, id := range session.Sections() {
		l := menuLabels[id]
		items = append(items, MenuItem{ID: id, Label: l.label, Icon: l.icon, Active: id == active})
	}
	return items
}

func (r *Router) home() *HomeView {
	p := r.content.Profile()
	return &HomeView{
		Name:     p.Name,
		Headline: p.Headline,
		Tagline:  p.Tagline,
		Glance:   r.content.Glance(),
		Cards:    r.content.NavCards(),
	}
}

func (r *Router) about() *AboutView {
	p := r.content.Profile()
	return &AboutView{
		Intro:       p.Intro,
		Highlights:  r.content.Highlights(),
		Summary:     r.content.Summary(),
		Education:   r.content.Education(),
		SkillGroups: r.content.SkillGroups(),
		SkillLevels: r.content.SkillLevels(),
		Statement:   p.Statement,
	}
}

func (r *Router) projects() *ProjectsView {
	return &ProjectsView{
		Projects:  r.content.Projects(),
		GitHubURL: r.content.Profile().GitHub,
	}
}

func (r *Router) resume() *ResumeView {
	v := &ResumeView{
		CurrentAsOf: r.now().Format("January 2006"),
		FallbackURL: r.content.Profile().LinkedIn,
	}

	asset, err := r.assets.Load(r.resumePath)
	if err != nil {
		r.logger.Warn("resume unavailable", "path", r.resumePath, "error", err)
		v.Error = resumeError(r.resumePath, err)
		return v
	}

	v.Available = true
	v.FileName = asset.Name
	v.Encoded = asset.Encoded
	v.DownloadURL = "/resume/download"
	v.Highlights = r.content.ResumeHighlights()
	return v
}

func resumeError(path string, err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		return fmt.Sprintf("Resume file not found at: %s", abs)
	}

	var loadErr *assets.LoadError
	if errors.As(err, &loadErr) {
		err = loadErr.Err
	}
	return fmt.Sprintf("Error loading resume: %v", err)
}

func (r *Router) certifications() *CertificationsView {
	return &CertificationsView{
		Certifications: r.content.Certifications(),
		Pursuing:       r.content.Pursuing(),
	}
}

func (r *Router) contact(state contact.FormState) *ContactView {
	p := r.content.Profile()
	form := FormView{
		Fields:   state.Fields,
		Subjects: contact.Subjects(),
		Notice:   state.Outcome.Message(),
	}
	if form.Fields.Subject == "" {
		form.Fields.Subject = contact.DefaultSubject
	}

	switch {
	case state.Outcome == contact.OutcomeAccepted:
		form.NoticeKind = "success"
	case state.Outcome.IsWarning():
		form.NoticeKind = "warning"
	case state.Outcome == contact.OutcomeDeliveryFailed:
		form.NoticeKind = "error"
	}

	return &ContactView{
		Email:    p.Email,
		Location: p.Location,
		Remote:   p.Remote,
		Twitter:  p.Twitter,
		Links:    r.content.ContactLinks(),
		Form:     form,
	}
}
