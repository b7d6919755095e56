// AngelaMos | 2026
// handler_test.go

package sample

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThrough(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	repo, mock := newMockRepo(t)
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r, passThrough)
	return r, mock
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBatchHandler(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sample_properties").
		WithArgs(int64(7), "grain_size", "0.5", "mm", nil, nil).
		WillReturnRows(insertedRow(1))
	mock.ExpectQuery("INSERT INTO sample_properties").
		WithArgs(int64(7), "magnetic", "false", nil, nil, nil).
		WillReturnRows(insertedRow(2))
	mock.ExpectCommit()

	rec := serve(router, http.MethodPost, "/sampleProperties/batch", `{
		"sample_id": 7,
		"properties": [
			{"property_name": "grain_size", "property_value": 0.5, "units": "mm"},
			{"property_name": "magnetic", "property_value": false}
		]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body BatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2 properties created", body.Message)
	require.Len(t, body.Properties, 2)
	assert.Equal(t, TextValue("0.5"), body.Properties[0].PropertyValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatchHandlerRejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"sample_id": 7, "properties": "x"}`, "invalid request body"},
		{"non scalar value", `{"sample_id": 7, "properties": [{"property_name": "a", "property_value": [1]}]}`, "invalid request body"},
		{"missing properties", `{"sample_id": 7}`, "missing required fields"},
		{"missing sample", `{"properties": []}`, "missing required fields"},
		{"item without name", `{"sample_id": 7, "properties": [{"property_value": "x"}]}`, "missing required fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mock := newTestRouter(t)

			rec := serve(router, http.MethodPost, "/sampleProperties/batch", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBatchHandlerUnknownSample(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sample_properties").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	rec := serve(router, http.MethodPost, "/sampleProperties/batch",
		`{"sample_id": 999, "properties": [{"property_name": "ph"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown sample")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyCRUDHandlers(t *testing.T) {
	router, mock := newTestRouter(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO sample_properties").
		WithArgs(int64(7), "ph", "7.1", nil, "chemical", nil).
		WillReturnRows(insertedRow(5))
	mock.ExpectQuery("FROM sample_properties WHERE property_id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns).
			AddRow(int64(5), int64(7), "ph", "7.1", nil, "chemical", nil, now))
	mock.ExpectQuery("UPDATE sample_properties").
		WithArgs(int64(5), nil, nil, nil, nil, nil, "resampled").
		WillReturnRows(sqlmock.NewRows(propertyRowColumns).
			AddRow(int64(5), int64(7), "ph", "7.1", nil, "chemical", "resampled", now))
	mock.ExpectQuery("DELETE FROM sample_properties").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns).
			AddRow(int64(5), int64(7), "ph", "7.1", nil, "chemical", "resampled", now))

	rec := serve(router, http.MethodPost, "/sampleProperties",
		`{"sample_id": 7, "property_name": "ph", "property_value": 7.1, "property_category": "chemical"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Sample property created")

	rec = serve(router, http.MethodGet, "/sampleProperties/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"property_value":"7.1"`)

	rec = serve(router, http.MethodPatch, "/sampleProperties/5", `{"notes": "resampled", "property_value": null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Sample property updated")

	rec = serve(router, http.MethodDelete, "/sampleProperties/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sample property deleted")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyHandlerErrors(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("FROM sample_properties WHERE property_id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns))

	rec := serve(router, http.MethodGet, "/sampleProperties/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "sample property not found")

	rec = serve(router, http.MethodGet, "/sampleProperties/sample/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid sample id")

	rec = serve(router, http.MethodPatch, "/sampleProperties/5", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCategoryHandler(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("WHERE property_category").
		WithArgs("chemical").
		WillReturnRows(sqlmock.NewRows(propertyRowColumns).
			AddRow(int64(1), int64(3), "ph", "7", nil, "chemical", nil, time.Now()))

	rec := serve(router, http.MethodGet, "/sampleProperties/category/chemical", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var props []PropertyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&props))
	require.Len(t, props, 1)
	assert.Nil(t, props[0].SampleCode)
}
