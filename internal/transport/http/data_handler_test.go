package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "langtab/internal/errors"
	"langtab/internal/services"
	"langtab/pkg/contracts/domain"
)

func newTestHandler(t *testing.T) *DataHandler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := services.NewDataService([]domain.Record{
		{Year: 2011, Language: "Elixir"},
		{Year: 2011, Language: "Red"},
		{Year: 2012, Language: "Crystal"},
		{Year: 1991, Language: "Python"},
	}, logger)

	return NewDataHandler(svc, logger, apierrors.NewErrorHandler(logger))
}

func doRequest(t *testing.T, h *DataHandler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDataHandler_GetYearCreated(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantYear   float64
	}{
		{name: "python", target: "/languages/Python/year", wantStatus: http.StatusOK, wantYear: 1991},
		{name: "elixir", target: "/languages/Elixir/year", wantStatus: http.StatusOK, wantYear: 2011},
		{name: "absent language is 404", target: "/languages/COBOL/year", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantYear, body["year"])
			} else {
				errObj := body["error"].(map[string]any)
				assert.Equal(t, "LANGUAGE_NOT_FOUND", errObj["error_code"])
			}
		})
	}
}

func TestDataHandler_GetYearCreated_Lenient(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/languages/COBOL/year?lenient=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["found"])
	assert.NotContains(t, body, "year")

	rec = doRequest(t, h, http.MethodGet, "/languages/Python/year?lenient=true", "")
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, float64(1991), body["year"])
}

func TestDataHandler_GetYearCount(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCount  float64
		wantCode   string
	}{
		{name: "grouped view default", target: "/years/2011/count", wantStatus: http.StatusOK, wantCount: 2},
		{name: "table view", target: "/years/2011/count?view=table", wantStatus: http.StatusOK, wantCount: 2},
		{name: "table view absent year counts zero", target: "/years/1960/count?view=table", wantStatus: http.StatusOK, wantCount: 0},
		{name: "grouped view absent year is 404", target: "/years/1960/count?view=grouped", wantStatus: http.StatusNotFound, wantCode: "YEAR_NOT_FOUND"},
		{name: "unknown view is 400", target: "/years/2011/count?view=columnar", wantStatus: http.StatusBadRequest, wantCode: "UNKNOWN_VIEW"},
		{name: "non-numeric year is 400", target: "/years/abc/count", wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeBody(t, rec)
			if tt.wantCode != "" {
				errObj := body["error"].(map[string]any)
				assert.Equal(t, tt.wantCode, errObj["error_code"])
				return
			}
			assert.Equal(t, tt.wantCount, body["count"])
		})
	}
}

func TestDataHandler_GetYears(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/years", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["count"])

	data := body["data"].([]any)
	first := data[0].(map[string]any)
	assert.Equal(t, float64(2011), first["year"])
	assert.Equal(t, []any{"Elixir", "Red"}, first["languages"])
}

func TestDataHandler_GetYear(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/years/2012/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []any{"Crystal"}, body["languages"])

	rec = doRequest(t, h, http.MethodGet, "/years/1960/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDataHandler_DeleteYear(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodDelete, "/years/2011/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Grouped count now fails, table count still sees the records.
	rec = doRequest(t, h, http.MethodGet, "/years/2011/count?view=grouped", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/years/2011/count?view=table", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])

	// Deleting again is a 404.
	rec = doRequest(t, h, http.MethodDelete, "/years/2011/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDataHandler_ReplaceRecords(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/records",
		`{"records":[{"year":1972,"language":"C"},{"year":1983,"language":"C++"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/languages", "")
	body := decodeBody(t, rec)
	assert.Equal(t, []any{"C", "C++"}, body["data"])

	rec = doRequest(t, h, http.MethodGet, "/languages/Python/year", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDataHandler_ReplaceRecords_Invalid(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"records":`},
		{name: "missing language", body: `{"records":[{"year":1991}]}`},
		{name: "empty record list", body: `{"records":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/records", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDataHandler_GetRecords(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/records", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(4), body["count"])
}
