package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/apperror"
	"folio.dev/internal/models"
	"folio.dev/internal/validation"
)

func newTestFormService(delay time.Duration) *FormService {
	return NewFormService(FormDelays{
		Contact:    delay,
		Newsletter: delay,
		Resume:     delay,
	}, validation.New(), "/static/resume.pdf", discardLogger())
}

func validContact() models.ContactForm {
	return models.ContactForm{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Engineering role",
		Message: "Would love to chat about the backend position.",
	}
}

func TestSubmitContactSucceedsAfterDelay(t *testing.T) {
	delay := 20 * time.Millisecond
	svc := newTestFormService(delay)

	start := time.Now()
	result, err := svc.SubmitContact(context.Background(), validContact())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.True(t, result.Success)
	assert.Equal(t, "Message Sent Successfully!", result.Title)
	assert.Equal(t, models.ContactForm{Name: "", Email: "", Subject: "", Message: ""}, result.Draft)
}

func TestSubmitContactRequiresFields(t *testing.T) {
	svc := newTestFormService(0)

	form := validContact()
	form.Email = ""
	form.Message = "   "

	_, err := svc.SubmitContact(context.Background(), form)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Details, "Email is required")
	assert.Contains(t, appErr.Details, "Message is required")
}

func TestSubmitContactRejectsBadEmail(t *testing.T) {
	svc := newTestFormService(0)

	form := validContact()
	form.Email = "not-an-email"

	_, err := svc.SubmitContact(context.Background(), form)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"Email must be a valid email address"}, appErr.Details)
}

func TestSubmitContactHonorsCancellation(t *testing.T) {
	svc := newTestFormService(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.SubmitContact(ctx, validContact())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitNewsletter(t *testing.T) {
	svc := newTestFormService(time.Millisecond)

	result, err := svc.SubmitNewsletter(context.Background(), models.NewsletterForm{Email: " reader@example.com "})
	require.NoError(t, err)
	assert.Equal(t, NewsletterSuccessTitle, result.Title)
	assert.Empty(t, result.Draft.Email)

	_, err = svc.SubmitNewsletter(context.Background(), models.NewsletterForm{})
	assert.Error(t, err)
}

func TestGenerateResume(t *testing.T) {
	svc := newTestFormService(time.Millisecond)

	result, err := svc.GenerateResume(context.Background(), models.ResumeRequest{
		Role:     "Backend",
		Sections: []string{"skills", "summary", "skills"},
	})
	require.NoError(t, err)
	assert.Equal(t, "backend", result.Role)
	assert.Equal(t, "pdf", result.Format)
	assert.Equal(t, []string{"summary", "skills"}, result.Sections)
	assert.Equal(t, "/static/resume.pdf", result.DownloadPath)
}

func TestGenerateResumeDefaultsToAllSections(t *testing.T) {
	svc := newTestFormService(0)

	result, err := svc.GenerateResume(context.Background(), models.ResumeRequest{Role: "devops", Format: "DOCX"})
	require.NoError(t, err)
	assert.Equal(t, "docx", result.Format)
	assert.Equal(t, ResumeSections(), result.Sections)
}

func TestGenerateResumeRejectsUnknownRole(t *testing.T) {
	svc := newTestFormService(0)

	_, err := svc.GenerateResume(context.Background(), models.ResumeRequest{Role: "astronaut"})
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"Target role must be one of: frontend, backend, fullstack, devops"}, appErr.Details)
}
