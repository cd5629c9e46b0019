package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperror.ErrReservationNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperror.ErrWalletNotFound), http.StatusNotFound},
		{"invalid input", apperror.ErrInvalidAmount, http.StatusBadRequest},
		{"state conflict", apperror.ErrSpotNotAvailable, http.StatusConflict},
		{"insufficient balance", apperror.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"processing failure", apperror.ErrPaymentProcessing, http.StatusInternalServerError},
		{"unclassified", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCodeFor(tt.err))
		})
	}
}

func TestDomainErrorResponse_HidesInternalDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := apperror.Wrap(apperror.ErrPaymentProcessing, errors.New("pq: deadlock detected"))
	require.NoError(t, DomainErrorResponse(c, err))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "payment processing failed", resp.Error)
	assert.NotContains(t, rec.Body.String(), "deadlock")
}

func TestDomainErrorResponse_ShowsClassifiedMessage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, DomainErrorResponse(c, apperror.ErrInsufficientBalance))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient balance")
}

func TestSuccessWithWarningResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, SuccessWithWarningResponse(c, http.StatusOK, "Payment processed", map[string]string{"id": "1"}, "notification delivery failed"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "notification delivery failed", resp.Warning)
}

func TestParseUUIDParam(t *testing.T) {
	e := echo.New()
	id := uuid.New()

	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"valid", id.String(), ""},
		{"missing", "", "id is required"},
		{"malformed", "not-a-uuid", "id must be a valid UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.value)

			got, err := ParseUUIDParam(c, "id")

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, id, got)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	e := echo.New()
	e.Validator = NewRequestValidator()

	newContext := func(body string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return e.NewContext(req, httptest.NewRecorder())
	}

	var ok payload
	assert.NoError(t, BindAndValidate(newContext(`{"email":"driver@example.com"}`), &ok))
	assert.Equal(t, "driver@example.com", ok.Email)

	var bad payload
	assert.Error(t, BindAndValidate(newContext(`{"email":"nope"}`), &bad))

	var malformed payload
	assert.Error(t, BindAndValidate(newContext(`{"email":`), &malformed))
}

func TestBindAndValidate_RequiredDecimal(t *testing.T) {
	e := echo.New()
	e.Validator = NewRequestValidator()

	newContext := func(body string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return e.NewContext(req, httptest.NewRecorder())
	}

	var missing models.WalletAmountRequest
	assert.Error(t, BindAndValidate(newContext(`{}`), &missing))

	var present models.WalletAmountRequest
	require.NoError(t, BindAndValidate(newContext(`{"amount":"12.50"}`), &present))
	assert.Equal(t, "12.5", present.Amount.String())

	var spotMissingRate models.CreateSpotRequest
	assert.Error(t, BindAndValidate(newContext(`{"spot_number":"A-101","spot_type":"EV"}`), &spotMissingRate))
}
