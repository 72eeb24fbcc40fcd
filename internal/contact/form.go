// Package contact validates contact form submissions and optionally hands
// accepted messages to a delivery service.
package contact

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Subject is one of the fixed choices offered by the contact form.
type Subject string

const (
	SubjectJobOpportunity       Subject = "Job Opportunity"
	SubjectProjectCollaboration Subject = "Project Collaboration"
	SubjectGeneralInquiry       Subject = "General Inquiry"
	SubjectFeedback             Subject = "Feedback"
)

// DefaultSubject is preselected in the form, so a subject is never missing.
const DefaultSubject = SubjectJobOpportunity

// Subjects returns the selectable subjects in display order.
func Subjects() []Subject {
	return []Subject{
		SubjectJobOpportunity,
		SubjectProjectCollaboration,
		SubjectGeneralInquiry,
		SubjectFeedback,
	}
}

// ParseSubject maps form input to a Subject, falling back to DefaultSubject.
func ParseSubject(s string) Subject {
	for _, subj := range Subjects() {
		if string(subj) == strings.TrimSpace(s) {
			return subj
		}
	}
	return DefaultSubject
}

// Submission is one contact form post. It is never stored beyond the
// submitting session's draft.
type Submission struct {
	Name    string  `form:"name" validate:"required"`
	Email   string  `form:"email" validate:"required,portfolio_email"`
	Subject Subject `form:"subject" validate:"required,oneof='Job Opportunity' 'Project Collaboration' 'General Inquiry' 'Feedback'"`
	Message string  `form:"message" validate:"required"`
}

// Normalize trims surrounding whitespace and resolves the subject.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: ParseSubject(string(s.Subject)),
		Message: strings.TrimSpace(s.Message),
	}
}

// Outcome is the result category of a submission.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMissingFields
	OutcomeInvalidEmail
	OutcomeAccepted
	OutcomeDeliveryFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMissingFields:
		return "missing_fields"
	case OutcomeInvalidEmail:
		return "invalid_email"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDeliveryFailed:
		return "delivery_failed"
	default:
		return "none"
	}
}

// Message is the notice shown to the submitter.
func (o Outcome) Message() string {
	switch o {
	case OutcomeMissingFields:
		return "Please fill in all required fields (*)"
	case OutcomeInvalidEmail:
		return "Please enter a valid email address"
	case OutcomeAccepted:
		return "Thank you for your message! I'll get back to you within 24-48 hours."
	case OutcomeDeliveryFailed:
		return "Sorry, there was an error sending your message. Please try again later."
	default:
		return ""
	}
}

// IsWarning reports whether the outcome asks the submitter to fix the form.
func (o Outcome) IsWarning() bool {
	return o == OutcomeMissingFields || o == OutcomeInvalidEmail
}

// FormState is the contact form as a session sees it: the draft fields and
// the outcome of the last submission, if any.
type FormState struct {
	Fields  Submission
	Outcome Outcome
}

// Handler evaluates contact form submissions.
type Handler struct {
	validate  *validator.Validate
	deliverer Deliverer
	logger    *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithDeliverer hands accepted submissions to d.
func WithDeliverer(d Deliverer) Option {
	return func(h *Handler) { h.deliverer = d }
}

// WithLogger sets the logger used for delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// NewHandler creates a Handler. Without WithDeliverer nothing is sent.
func NewHandler(opts ...Option) *Handler {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("portfolio_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	h := &Handler{validate: v, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Submit validates sub and, when accepted and a deliverer is configured,
// delivers it. Identical input always yields the same category unless
// delivery fails.
func (h *Handler) Submit(ctx context.Context, sub Submission) Outcome {
	sub = sub.Normalize()

	if outcome := h.check(sub); outcome != OutcomeAccepted {
		return outcome
	}

	if h.deliverer != nil {
		if err := h.deliverer.Deliver(ctx, sub); err != nil {
			h.logger.ErrorContext(ctx, "contact delivery failed", "subject", sub.Subject, "error", err)
			return OutcomeDeliveryFailed
		}
	}
	return OutcomeAccepted
}

// Apply submits sub and returns the next form state. The draft is cleared
// only when the submission is accepted.
func (h *Handler) Apply(ctx context.Context, sub Submission) FormState {
	outcome := h.Submit(ctx, sub)
	if outcome == OutcomeAccepted {
		return FormState{Fields: Submission{Subject: DefaultSubject}, Outcome: outcome}
	}
	return FormState{Fields: sub.Normalize(), Outcome: outcome}
}

func (h *Handler) check(sub Submission) Outcome {
	err := h.validate.Struct(sub)
	if err == nil {
		return OutcomeAccepted
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return OutcomeMissingFields
	}

	// Missing fields win over a malformed email, whatever order they fail in.
	outcome := OutcomeAccepted
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return OutcomeMissingFields
		case "portfolio_email":
			outcome = OutcomeInvalidEmail
		default:
			return OutcomeMissingFields
		}
	}
	return outcome
}
