// Package handlers contains the HTTP endpoint handlers.
//
// Handlers are thin closures over *app.Dependencies: they parse
// parameters, run the (pure) business logic, and hand any failure to
// HandleServiceError for uniform translation into a JSON response.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/HAMZAOUI-AMENY/devops-api/models"
	"github.com/HAMZAOUI-AMENY/devops-api/services"
	"github.com/HAMZAOUI-AMENY/devops-api/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// respondOK writes a 200 JSON payload, reporting encode failures as
// internal faults. By the time encoding fails the status line is
// already on the wire, so the fault is logged rather than re-written.
func respondOK(w http.ResponseWriter, data interface{}, logger *zap.Logger) {
	if err := utils.WriteOK(w, data); err != nil {
		logger.Error("failed to write response",
			zap.Error(services.NewInternalError("response encoding failed", err)))
	}
}

// parseIntParam extracts a path parameter and parses it as an integer.
// A missing or non-numeric value is a malformed request.
func parseIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, services.NewMalformedRequestError(
			fmt.Sprintf("%s must be an integer", name),
			map[string]interface{}{name: raw})
	}
	return value, nil
}

// parseFloatQuery extracts a query parameter and parses it as a float.
// A missing or non-numeric value is a malformed request.
func parseFloatQuery(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, services.NewMalformedRequestError(
			fmt.Sprintf("%s is a required query parameter", name),
			map[string]interface{}{name: "missing"})
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, services.NewMalformedRequestError(
			fmt.Sprintf("%s must be a number", name),
			map[string]interface{}{name: raw})
	}
	return value, nil
}

// decodeItem decodes and validates an Item request body.
// Undecodable or invalid bodies are malformed requests.
func decodeItem(r *http.Request) (*models.Item, error) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		return nil, services.NewMalformedRequestError(
			"request body must be a valid Item",
			map[string]interface{}{"body": err.Error()})
	}

	if err := utils.ValidateStruct(&item); err != nil {
		details := make(map[string]interface{})
		for field, msg := range utils.GetValidationFields(err) {
			details[field] = msg
		}
		return nil, services.NewMalformedRequestError("Validation failed", details)
	}

	return &item, nil
}
