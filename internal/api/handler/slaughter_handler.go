package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanabel-org/adahi-api/internal/api/metrics"
	"github.com/sanabel-org/adahi-api/internal/core/domain"
	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

// SlaughterHandler exposes the slaughter workflow board. All routes sit
// behind the admin gate.
type SlaughterHandler struct {
	submissions ports.SubmissionService
	slaughter   ports.SlaughterService
}

func NewSlaughterHandler(submissions ports.SubmissionService, slaughter ports.SlaughterService) *SlaughterHandler {
	return &SlaughterHandler{submissions: submissions, slaughter: slaughter}
}

// List handles GET /v1/slaughter, the board view, newest first.
//
// @Summary      List submissions for the slaughter board
// @Tags         slaughter
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSubmissionsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/slaughter [get]
func (h *SlaughterHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	items, err := h.submissions.ListAll(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(items))
}

// Transition handles POST /v1/slaughter/:id/transition.
//
// @Summary      Move a submission through the slaughter workflow
// @Tags         slaughter
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Submission ID"
// @Param        body  body      slaughterTransitionRequest  true  "Target stage"
// @Success      200   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/slaughter/{id}/transition [post]
func (h *SlaughterHandler) Transition(c echo.Context) error {
	var req slaughterTransitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	updated, err := h.slaughter.Transition(c.Request().Context(), actor, c.Param("id"), domain.SlaughterStatus(req.To))
	if err != nil {
		return err
	}

	metrics.SlaughterTransitionsTotal.WithLabelValues(req.To).Inc()
	return c.JSON(http.StatusOK, toSubmissionResponse(updated))
}
