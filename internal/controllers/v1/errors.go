package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fingoal/backend/internal/chat"
	"github.com/fingoal/backend/internal/finance"
	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/models"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// clientErrors are the errors caused by the request.
var clientErrors = []error{
	models.ErrValidation,
	finance.ErrInvalidArgument,
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrInvalidUUID,
	httputil.ErrInvalidQuery,
}

// status returns the appropriate HTTP status for an error.
//
// Errors that are not known to be caused by the request are server errors.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, chat.ErrChatFailed) {
		return http.StatusBadGateway
	}

	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return http.StatusBadRequest
	}

	log.Error().Err(err).Msg("unclassified error")
	return http.StatusInternalServerError
}
