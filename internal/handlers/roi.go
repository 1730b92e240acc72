package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/internal/roi"
	"github.com/nfrund/sitefront/web/src/templates/components"
	"github.com/nfrund/sitefront/web/src/templates/pages"
)

// ROIHandler serves the ROI calculator.
type ROIHandler struct {
	site *Site
}

// NewROIHandler creates a new ROIHandler.
func NewROIHandler(site *Site) *ROIHandler {
	return &ROIHandler{site: site}
}

// bindInput starts from the defaults and overlays whatever the query sets.
func bindInput(c echo.Context) (roi.Input, map[string]string) {
	in := roi.DefaultInput
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &in); err != nil {
		return in, map[string]string{"": "Please enter numbers only."}
	}
	if err := in.Validate(); err != nil {
		return in, roi.FieldErrors(err)
	}
	return in, nil
}

// ROIGet handles GET /roi.
func (h *ROIHandler) ROIGet(c echo.Context) error {
	ctx := c.Request().Context()
	page, err := h.site.Content.Page(ctx, "/roi")
	if err != nil {
		middleware.FromContext(ctx).Warn("ROI page content unavailable", "error", err)
	}

	in, fieldErrors := bindInput(c)
	shell := h.site.shell(c, "ROI calculator")
	return h.site.render(c, http.StatusOK, pages.ROI(shell, page, in, fieldErrors), h.site.meta(c, page, shell))
}

// EstimateGet handles GET /roi/estimate and returns only the result
// fragment. Invalid input still answers 200 so htmx swaps the notice in.
func (h *ROIHandler) EstimateGet(c echo.Context) error {
	in, fieldErrors := bindInput(c)
	if len(fieldErrors) > 0 {
		return c.Render(http.StatusOK, "", components.ROIInvalid())
	}
	return c.Render(http.StatusOK, "", components.ROIResult(roi.Estimate(in)))
}
