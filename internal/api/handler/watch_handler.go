package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/api/metrics"
	"github.com/sanabel-org/adahi-api/internal/core/domain"
	"github.com/sanabel-org/adahi-api/internal/infrastructure/realtime"
)

// WatchHandler streams submission result sets over server-sent events. One
// stream per connection: admins watch the full set, donors their own. The
// hub subscription is disposed when the connection closes.
type WatchHandler struct {
	hub *realtime.Hub
	log zerolog.Logger
}

func NewWatchHandler(hub *realtime.Hub, log zerolog.Logger) *WatchHandler {
	return &WatchHandler{hub: hub, log: log}
}

// Watch handles GET /v1/submissions/watch.
//
// @Summary      Watch submissions in realtime (SSE)
// @Tags         submissions
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string  "event stream of submission result sets"
// @Failure      401  {object}  errorResponse
// @Router       /v1/submissions/watch [get]
func (h *WatchHandler) Watch(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	updates, dispose := h.hub.Subscribe(actor.UserID, actor.IsAdmin)
	defer dispose()

	metrics.WatchSubscribers.Inc()
	defer metrics.WatchSubscribers.Dec()

	// initial push so the consumer does not wait for the first change
	initial, err := h.hub.Current(c.Request().Context(), actor.UserID, actor.IsAdmin)
	if err != nil {
		// the stream stays open; the next change broadcast will catch up
		h.log.Warn().Err(err).Str("user_id", actor.UserID).Msg("initial snapshot failed")
	} else if err := writeEvent(res, initial); err != nil {
		return nil
	}

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case view, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeEvent(res, view); err != nil {
				return nil
			}
		}
	}
}

func writeEvent(res *echo.Response, view []domain.AdahiSubmission) error {
	payload, err := json.Marshal(toListResponse(view))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
		return err
	}
	res.Flush()
	return nil
}
