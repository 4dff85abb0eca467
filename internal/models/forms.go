package models

// ContactForm is the draft state of the contact form
type ContactForm struct {
	Name    string `json:"name" validate:"required,max=100,no_emoji"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=150"`
	Message string `json:"message" validate:"required,max=5000"`
}

// NewsletterForm is the draft state of the newsletter signup
type NewsletterForm struct {
	Email string `json:"email" validate:"required,email"`
}

// ResumeRequest configures the custom resume generator
type ResumeRequest struct {
	Role     string   `json:"role" validate:"required,oneof=frontend backend fullstack devops"`
	Format   string   `json:"format" validate:"omitempty,oneof=pdf docx"`
	Sections []string `json:"sections" validate:"dive,oneof=summary experience projects skills education"`
}

// FormResult is what the UI shows once a simulated submission completes
type FormResult struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ContactResult pairs the success view with the reset draft
type ContactResult struct {
	FormResult
	Draft ContactForm `json:"draft"`
}

// NewsletterResult pairs the success view with the reset draft
type NewsletterResult struct {
	FormResult
	Draft NewsletterForm `json:"draft"`
}

// ResumeResult describes the "generated" resume
type ResumeResult struct {
	FormResult
	Role         string   `json:"role"`
	Format       string   `json:"format"`
	Sections     []string `json:"sections"`
	DownloadPath string   `json:"download_path"`
}
