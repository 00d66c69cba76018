package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/mock"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *mock.MockOTPService, *mock.MockAppInfoService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	otpSvc := mock.NewMockOTPService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	h := NewHandler(&service.Services{OTPService: otpSvc, AppInfoService: appInfo}, logger.Nop())

	return h.Init(), otpSvc, appInfo
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── POST /otp/send ───────────────────────────────────────────────────────────

func TestSendOTP_Success(t *testing.T) {
	router, otpSvc, _ := newTestRouter(t)

	otpSvc.EXPECT().
		SendOTP(gomock.Any(), models.SendOTPRequest{Phone: "+919876543210", Channel: "sms"}).
		Return(models.SendOTPResponse{SessionID: "sess-1"}, nil)

	rec := serve(router, http.MethodPost, "/otp/send", `{"phone":"+919876543210","channel":"sms"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"sessionId":"sess-1"}`, rec.Body.String())
}

func TestSendOTP_InvalidJSON(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/otp/send", `{"phone":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", rec.Body.String())
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	router, otpSvc, _ := newTestRouter(t)

	otpSvc.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
		Return(models.SendOTPResponse{}, service.ErrInvalidDataProvided)

	rec := serve(router, http.MethodPost, "/otp/send", `{"phone":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendOTP_UnexpectedError(t *testing.T) {
	router, otpSvc, _ := newTestRouter(t)

	otpSvc.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
		Return(models.SendOTPResponse{}, errors.New("redis: connection refused"))

	rec := serve(router, http.MethodPost, "/otp/send", `{"phone":"+919876543210"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", rec.Body.String())
}

// ── POST /otp/verify ─────────────────────────────────────────────────────────

func TestVerifyOTP_Success(t *testing.T) {
	router, otpSvc, _ := newTestRouter(t)

	otpSvc.EXPECT().
		VerifyOTP(gomock.Any(), models.VerifyOTPRequest{SessionID: "sess-1", OTP: "424242"}).
		Return(models.Token{SignedString: "signed.jwt.value"}, nil)

	rec := serve(router, http.MethodPost, "/otp/verify", `{"sessionId":"sess-1","otp":"424242"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))
	assert.Empty(t, rec.Body.String())
}

func TestVerifyOTP_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid data provided"},
		{"wrong code", service.ErrInvalidOTP, http.StatusUnauthorized, "Invalid OTP"},
		{"expired", service.ErrOTPSessionExpired, http.StatusNotFound, "OTP session expired or not found"},
		{"too many attempts", service.ErrTooManyAttempts, http.StatusTooManyRequests, "too many attempts"},
		{"token failure", service.ErrTokenCreationFailed, http.StatusInternalServerError, "token creation failed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, otpSvc, _ := newTestRouter(t)
			otpSvc.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.err)

			rec := serve(router, http.MethodPost, "/otp/verify", `{"sessionId":"s","otp":"000000"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestVerifyOTP_InvalidJSON(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/otp/verify", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── GET /version and routing ─────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router, _, appInfo := newTestRouter(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(router, http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
}

func TestInit_UnknownRouteAndWrongMethod_Return404(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/otp/send"},
		{http.MethodPut, "/otp/verify"},
		{http.MethodPost, "/version"},
		{http.MethodGet, "/unknown"},
	} {
		rec := serve(router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.path)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, _, appInfo := newTestRouter(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	rec := serve(router, http.MethodGet, "/version", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	router, otpSvc, _ := newTestRouter(t)
	otpSvc.EXPECT().SendOTP(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.SendOTPRequest) (models.SendOTPResponse, error) {
			panic("service exploded")
		},
	)

	rec := serve(router, http.MethodPost, "/otp/send", `{"phone":"+919876543210"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
