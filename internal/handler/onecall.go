// Package handler implements the business logic for API routes
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/harshitrajsinha/onecall-weather-go/internal/database"
	"github.com/harshitrajsinha/onecall-weather-go/internal/models"
	"github.com/harshitrajsinha/onecall-weather-go/internal/onecall"
	"github.com/harshitrajsinha/onecall-weather-go/internal/response"
)

// NotificationReceiver accepts inbound notifications for the adapter
type NotificationReceiver interface {
	HandleNotification(ctx context.Context, name string, cfg onecall.RequestConfig)
}

// EventReader reads back stored data events
type EventReader interface {
	LatestEvent(ctx context.Context) (database.StoredEvent, error)
}

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck() error
}

// OneCallHandler encapsulates all dependencies required for the onecall routes
type OneCallHandler struct {
	receiver NotificationReceiver
	events   EventReader
	health   HealthChecker
	logger   zerolog.Logger
}

// NewOneCallHandler is the constructor used for dependency injection to onecall handler
func NewOneCallHandler(receiver NotificationReceiver, events EventReader, health HealthChecker, logger zerolog.Logger) *OneCallHandler {
	return &OneCallHandler{
		receiver: receiver,
		events:   events,
		health:   health,
		logger:   logger,
	}
}

// HandleNotification forwards an inbound notification to the adapter and returns immediately
func (h *OneCallHandler) HandleNotification(w http.ResponseWriter, r *http.Request) {

	var payload models.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Debug().Err(err).Msg("error decoding notification payload")
		response.SendErrorResponseToClient(w, response.StatusBadRequestCode, map[string]string{"body": "invalid notification payload"})
		return
	}

	if payload.Notification == "" {
		response.SendErrorResponseToClient(w, response.StatusBadRequestCode, map[string]string{"notification": "notification name is required"})
		return
	}

	// outcome is delivered to the sinks, never in this response
	h.receiver.HandleNotification(r.Context(), payload.Notification, payload.Payload)

	response.SendResponseToClient(w, http.StatusAccepted, "notification received", nil)
}

// HandleLatest returns the most recently delivered onecall payload
func (h *OneCallHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {

	stored, err := h.events.LatestEvent(r.Context())
	if err != nil {
		if errors.Is(err, database.ErrNoEvents) {
			response.SendErrorResponseToClient(w, response.StatusNotFoundCode, map[string]string{"onecall": "no data received yet"})
			return
		}
		h.logger.Error().Err(err).Msg("error reading latest onecall event")
		response.SendErrorResponseToClient(w, response.StatusInternalServerErrorCode, nil)
		return
	}

	response.SendResponseToClient(w, http.StatusOK, "latest onecall data", stored)
}

// HandleHealth reports database reachability
func (h *OneCallHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {

	if err := h.health.HealthCheck(); err != nil {
		h.logger.Error().Err(err).Msg("health check failed")
		response.SendErrorResponseToClient(w, response.StatusServiceUnavailableCode, map[string]string{"database": "unreachable"})
		return
	}

	response.SendResponseToClient(w, http.StatusOK, "healthy", nil)
}
