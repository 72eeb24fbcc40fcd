package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyanka7411/portfolio/internal/contact"
	"github.com/priyanka7411/portfolio/internal/session"
	"github.com/priyanka7411/portfolio/internal/view"
)

func (s *Server) routes() {
	r := s.engine

	// Full page; HTMX requests get just the section.
	r.GET("/", func(c *gin.Context) {
		s.renderPage(c, session.ParseSectionID(c.Query("section")), isHTMX(c), nil)
	})

	// HTMX navigation endpoint - returns just the section HTML
	r.GET("/section/:id", func(c *gin.Context) {
		id := session.ParseSectionID(c.Param("id"))
		if id == "" {
			c.String(http.StatusNotFound, "unknown section %q", c.Param("id"))
			return
		}
		s.renderPage(c, id, true, nil)
	})

	r.POST("/contact", s.handleContact)
	r.GET("/resume/download", s.handleResumeDownload)

	r.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"active_sessions": s.sessions.Len(),
			"total_renders":   s.sessions.TotalRenders(),
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// renderPage runs one render pass for the caller's session. update, when
// set, changes the session before the router sees it.
func (s *Server) renderPage(c *gin.Context, selected session.SectionID, fragment bool, update func(session.Session) session.Session) {
	cookieName := s.cfg.Session.CookieName
	id, _ := c.Cookie(cookieName)

	var doc view.Document
	id = s.sessions.Render(id, func(sess session.Session) session.Session {
		if update != nil {
			sess = update(sess)
		}
		doc, sess = s.router.Render(selected, sess)
		return sess
	})

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, id, int(s.cfg.Session.IdleTimeout.Seconds()), "/", "", s.cfg.Session.SecureCookie, true)

	name := "index.html"
	if fragment {
		name = "section.html"
	}
	c.HTML(http.StatusOK, name, doc)
}

// Handle contact form submission; HTMX posts get the section fragment back.
func (s *Server) handleContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		_ = c.Error(err)
		c.String(http.StatusBadRequest, "malformed form submission")
		return
	}

	ctx := c.Request.Context()
	s.renderPage(c, session.SectionContact, isHTMX(c), func(sess session.Session) session.Session {
		sess.Contact = s.contact.Apply(ctx, sub)
		s.logger.InfoContext(ctx, "contact form submitted", "outcome", sess.Contact.Outcome.String(), "subject", sub.Subject)
		return sess
	})
}

func (s *Server) handleResumeDownload(c *gin.Context) {
	asset, err := s.assets.Load(s.cfg.Resume.Path)
	if err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		if errors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.String(status, "Resume is not available right now.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.Resume.DownloadName))
	c.Data(http.StatusOK, "application/pdf", asset.Data)
}
