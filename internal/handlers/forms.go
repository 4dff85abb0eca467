package handlers

import (
	"log/slog"
	"net/http"

	"folio.dev/internal/apperror"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/web"
)

// FormHandler exposes the simulated form submissions
type FormHandler struct {
	formService *services.FormService
	renderer    *web.Renderer
	log         *slog.Logger
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(fs *services.FormService, renderer *web.Renderer, log *slog.Logger) *FormHandler {
	return &FormHandler{formService: fs, renderer: renderer, log: log}
}

// SubmitContact handles POST /api/forms/contact
func (h *FormHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := decodeBody(w, r, &form); err != nil {
		respondError(w, err)
		return
	}
	result, err := h.formService.SubmitContact(r.Context(), form)
	if err != nil {
		h.respondFormError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// SubmitNewsletter handles POST /api/forms/newsletter
func (h *FormHandler) SubmitNewsletter(w http.ResponseWriter, r *http.Request) {
	var form models.NewsletterForm
	if err := decodeBody(w, r, &form); err != nil {
		respondError(w, err)
		return
	}
	result, err := h.formService.SubmitNewsletter(r.Context(), form)
	if err != nil {
		h.respondFormError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GenerateResume handles POST /api/forms/resume
func (h *FormHandler) GenerateResume(w http.ResponseWriter, r *http.Request) {
	var req models.ResumeRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, err)
		return
	}
	result, err := h.formService.GenerateResume(r.Context(), req)
	if err != nil {
		h.respondFormError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ContactPage handles the HTML contact form post
func (h *FormHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := decodeBody(w, r, &form); err != nil {
		h.renderError(w, r, err)
		return
	}
	result, err := h.formService.SubmitContact(r.Context(), form)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderResult(w, http.StatusOK, web.ResultView{
		Success: true, Title: result.Title, Message: result.Message,
		Link: "/contact", LinkLabel: "Send another message",
	})
}

// NewsletterPage handles the HTML newsletter form post
func (h *FormHandler) NewsletterPage(w http.ResponseWriter, r *http.Request) {
	var form models.NewsletterForm
	if err := decodeBody(w, r, &form); err != nil {
		h.renderError(w, r, err)
		return
	}
	result, err := h.formService.SubmitNewsletter(r.Context(), form)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderResult(w, http.StatusOK, web.ResultView{Success: true, Title: result.Title, Message: result.Message})
}

// ResumePage handles the HTML resume generator post
func (h *FormHandler) ResumePage(w http.ResponseWriter, r *http.Request) {
	var req models.ResumeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.renderError(w, r, err)
		return
	}
	result, err := h.formService.GenerateResume(r.Context(), req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderResult(w, http.StatusOK, web.ResultView{
		Success: true, Title: result.Title, Message: result.Message,
		Link: result.DownloadPath, LinkLabel: "Download resume",
	})
}

func (h *FormHandler) respondFormError(w http.ResponseWriter, err error) {
	if isCanceled(err) {
		// client went away mid-simulation
		h.log.Debug("form submission canceled", "error", err)
		return
	}
	respondError(w, err)
}

func (h *FormHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if isCanceled(err) {
		h.log.Debug("form submission canceled", "path", r.URL.Path, "error", err)
		return
	}
	appErr := apperror.From(err)
	h.renderResult(w, appErr.Code, web.ResultView{
		Title:   "Something went wrong",
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func (h *FormHandler) renderResult(w http.ResponseWriter, status int, view web.ResultView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.RenderFragment(w, "result", view); err != nil {
		h.log.Error("rendering form result", "error", err)
	}
}
