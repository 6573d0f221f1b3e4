package handlers

import (
	"net/http"

	"github.com/HAMZAOUI-AMENY/devops-api/services"
	"github.com/HAMZAOUI-AMENY/devops-api/utils"
	"go.uber.org/zap"
)

// HandleServiceError maps domain errors to HTTP responses
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	details := services.GetErrorDetails(err)

	switch {
	case services.IsInvalidInputError(err):
		logger.Error("invalid input", zap.Error(err))
		if err := utils.WriteBadRequest(w, err.Error(), details); err != nil {
			logger.Error("failed to write bad request response", zap.Error(err))
		}

	case services.IsMalformedRequestError(err):
		logger.Warn("malformed request", zap.Error(err))
		if err := utils.WriteUnprocessableEntity(w, err.Error(), details); err != nil {
			logger.Error("failed to write unprocessable entity response", zap.Error(err))
		}

	default:
		// Anything else is an internal fault; log it but return a
		// generic message
		logger.Error("internal server error", zap.Error(err))
		if err := utils.WriteInternalServerError(w, "An internal error occurred"); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}
	}
}
