package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/contact"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/internal/view"
	"github.com/nfrund/sitefront/web/src/templates/components"
)

const (
	contactThanks  = "Thanks! We'll be in touch shortly."
	contactInvalid = "Please correct the highlighted fields and try again."
	contactFailed  = "Sorry, we couldn't send your message. Please try again later."
)

// Submitter accepts contact form submissions.
type Submitter interface {
	Submit(ctx context.Context, s contact.Submission) (contact.Submission, error)
}

// ContactHandler handles the contact form.
type ContactHandler struct {
	site      *Site
	submitter Submitter
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(site *Site, submitter Submitter) *ContactHandler {
	return &ContactHandler{site: site, submitter: submitter}
}

// ContactPost handles POST /contact. htmx requests get the re-rendered form
// back; plain form posts are redirected to the homepage with a flash message.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var sub contact.Submission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.").SetInternal(err)
	}

	state := components.ContactFormState{
		Name:    sub.Name,
		Email:   sub.Email,
		Company: sub.Company,
		Message: sub.Message,
	}

	saved, err := h.submitter.Submit(ctx, sub)
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		state.Errors = verr.Fields
		if !isHTMX(c) {
			view.SetFlashError(c, contactInvalid)
		}
	case err != nil:
		logger.Error("Failed to accept contact submission", "error", err)
		state.Errors = map[string]string{"": contactFailed}
		if !isHTMX(c) {
			view.SetFlashError(c, contactFailed)
		}
	default:
		logger.Info("Contact submission accepted", "id", saved.ID)
		state = components.ContactFormState{Success: contactThanks}
		if !isHTMX(c) {
			view.SetFlashSuccess(c, contactThanks)
		}
	}

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#"+components.ContactFormID)
	}

	home, err := h.site.Content.Homepage(ctx)
	if err != nil {
		logger.Warn("Homepage content unavailable for contact form", "error", err)
	}
	form := components.ContactForm(home.Object("homepageBlocks.contact"), state)
	return c.Render(http.StatusOK, "", form)
}
