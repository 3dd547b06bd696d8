package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestJSON_NilBody(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()
	Error(rr, http.StatusConflict, "Note already exists")

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, ErrorBody{Status: "error", Message: "Note already exists"}, decode(t, rr))
}

func TestDatabaseError(t *testing.T) {
	driverErr := errors.New(`relation "notes" does not exist`)
	wrapped := fmt.Errorf("list notes: %w", fmt.Errorf("List: QueryContext: %w", driverErr))

	rr := httptest.NewRecorder()
	DatabaseError(rr, http.StatusInternalServerError, wrapped)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, ErrorBody{
		Status:  "error",
		Message: `Database error: relation "notes" does not exist`,
	}, decode(t, rr))
}

func TestDatabaseError_MasksCredentials(t *testing.T) {
	rr := httptest.NewRecorder()
	DatabaseError(rr, http.StatusServiceUnavailable,
		errors.New("failed to connect to host=db user=app password=s3cret database=notes"))

	body := decode(t, rr)
	assert.NotContains(t, body.Message, "s3cret")
	assert.Contains(t, body.Message, "password=****")
}
