package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"folio.dev/internal/models"
	"folio.dev/internal/validation"
)

// Success copy shown once a simulated submission completes
const (
	ContactSuccessTitle    = "Message Sent Successfully!"
	ContactSuccessMessage  = "Thank you for reaching out. I'll get back to you within 24 hours."
	NewsletterSuccessTitle = "You're Subscribed!"
	NewsletterSuccessMsg   = "Thanks for subscribing. The next issue will land in your inbox soon."
	ResumeSuccessTitle     = "Resume Ready!"
	ResumeSuccessMessage   = "Your customized resume has been generated."
)

var defaultResumeSections = []string{"summary", "experience", "projects", "skills", "education"}

// FormDelays are the simulated network latencies per form
type FormDelays struct {
	Contact    time.Duration
	Newsletter time.Duration
	Resume     time.Duration
}

// FormService simulates the contact, newsletter and resume submissions.
// Nothing leaves the process: each call validates, waits, and answers with
// the static success view.
type FormService struct {
	delays     FormDelays
	validator  *validation.Validator
	resumePath string
	log        *slog.Logger
}

// NewFormService creates a new FormService
func NewFormService(delays FormDelays, v *validation.Validator, resumePath string, log *slog.Logger) *FormService {
	return &FormService{
		delays:     delays,
		validator:  v,
		resumePath: resumePath,
		log:        log,
	}
}

// SubmitContact validates the draft, waits the contact delay and returns
// the success view with an emptied draft.
func (s *FormService) SubmitContact(ctx context.Context, form models.ContactForm) (*models.ContactResult, error) {
	form = trimContact(form)
	if err := s.validator.Struct(form); err != nil {
		return nil, err
	}
	if err := wait(ctx, s.delays.Contact); err != nil {
		return nil, err
	}

	s.log.Info("contact form submitted", "subject_len", len(form.Subject), "message_len", len(form.Message))
	return &models.ContactResult{
		FormResult: models.FormResult{Success: true, Title: ContactSuccessTitle, Message: ContactSuccessMessage},
		Draft:      models.ContactForm{},
	}, nil
}

// SubmitNewsletter simulates a newsletter signup
func (s *FormService) SubmitNewsletter(ctx context.Context, form models.NewsletterForm) (*models.NewsletterResult, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := s.validator.Struct(form); err != nil {
		return nil, err
	}
	if err := wait(ctx, s.delays.Newsletter); err != nil {
		return nil, err
	}

	s.log.Info("newsletter signup submitted")
	return &models.NewsletterResult{
		FormResult: models.FormResult{Success: true, Title: NewsletterSuccessTitle, Message: NewsletterSuccessMsg},
		Draft:      models.NewsletterForm{},
	}, nil
}

// GenerateResume simulates building a resume tailored to a role. The
// download always points at the static resume file.
func (s *FormService) GenerateResume(ctx context.Context, req models.ResumeRequest) (*models.ResumeResult, error) {
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if req.Format == "" {
		req.Format = "pdf"
	}

	sections := orderedSections(req.Sections)
	if err := wait(ctx, s.delays.Resume); err != nil {
		return nil, err
	}

	s.log.Info("resume generated", "role", req.Role, "format", req.Format)
	return &models.ResumeResult{
		FormResult:   models.FormResult{Success: true, Title: ResumeSuccessTitle, Message: ResumeSuccessMessage},
		Role:         req.Role,
		Format:       req.Format,
		Sections:     sections,
		DownloadPath: s.resumePath,
	}, nil
}

// ResumeSections lists the generator's sections in resume order
func ResumeSections() []string {
	return slices.Clone(defaultResumeSections)
}

// orderedSections dedupes the selection and puts it in resume order;
// an empty selection means every section.
func orderedSections(selected []string) []string {
	if len(selected) == 0 {
		return slices.Clone(defaultResumeSections)
	}
	out := make([]string, 0, len(selected))
	for _, section := range defaultResumeSections {
		if slices.Contains(selected, section) {
			out = append(out, section)
		}
	}
	return out
}

func trimContact(f models.ContactForm) models.ContactForm {
	return models.ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
