package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanabel-org/adahi-api/internal/api/metrics"
	"github.com/sanabel-org/adahi-api/internal/core/domain"
	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

// SubmissionHandler handles HTTP requests for Adahi submission operations.
type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Create handles POST /v1/submissions.
//
// @Summary      Record a new Adahi submission
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSubmissionRequest  true  "Submission details"
// @Success      201   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/submissions [post]
func (h *SubmissionHandler) Create(c echo.Context) error {
	var req createSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), actor, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.SubmissionsCreatedTotal.WithLabelValues(string(created.DistributionPreference)).Inc()
	return c.JSON(http.StatusCreated, toSubmissionResponse(created))
}

// List handles GET /v1/submissions. The default scope is the caller's own
// submissions; ?scope=all returns the complete set (admin only).
//
// @Summary      List submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        scope  query     string  false  "own (default) or all"
// @Success      200    {object}  listSubmissionsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/submissions [get]
func (h *SubmissionHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var items []domain.AdahiSubmission
	switch c.QueryParam("scope") {
	case "", "own":
		items, err = h.service.ListOwn(c.Request().Context(), actor)
	case "all":
		items, err = h.service.ListAll(c.Request().Context(), actor)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "scope must be own or all")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(items))
}

// Update handles PATCH /v1/submissions/:id (admin only).
//
// @Summary      Edit a submission
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Submission ID"
// @Param        body  body      updateSubmissionRequest  true  "Fields to change"
// @Success      200   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/submissions/{id} [patch]
func (h *SubmissionHandler) Update(c echo.Context) error {
	var req updateSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSubmissionResponse(updated))
}

// SetStatus handles PATCH /v1/submissions/:id/status (admin only).
//
// @Summary      Toggle the ledger entry status
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Submission ID"
// @Param        body  body      entryStatusRequest  true  "New entry status"
// @Success      204   "status updated"
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/submissions/{id}/status [patch]
func (h *SubmissionHandler) SetStatus(c echo.Context) error {
	var req entryStatusRequest
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

	status := domain.EntryStatus(req.Status)
	if err := h.service.SetEntryStatus(c.Request().Context(), actor, c.Param("id"), status); err != nil {
		return err
	}

	metrics.EntryStatusTogglesTotal.WithLabelValues(req.Status).Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/submissions/:id (admin only, permanent).
//
// @Summary      Delete a submission
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Submission ID"
// @Success      204  "deleted"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/submissions/{id} [delete]
func (h *SubmissionHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
