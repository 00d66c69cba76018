package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-id-wallet/internal/app"
	"github.com/MKhiriev/go-id-wallet/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidOTP, errorResponse{http.StatusUnauthorized, app.MsgInvalidOTP}},
	{service.ErrOTPSessionExpired, errorResponse{http.StatusNotFound, app.MsgSessionNotFound}},
	{service.ErrTooManyAttempts, errorResponse{http.StatusTooManyRequests, app.MsgTooManyAttempts}},
	{service.ErrTokenCreationFailed, errorResponse{http.StatusInternalServerError, app.MsgTokenCreationFailed}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
