package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
)

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dishes/7", nil)

	NewApplicationResponder("").RespondError(c, err)

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return rec, problem
}

func TestApplicationResponder_Validation(t *testing.T) {
	rec, problem := respondWith(t, apperr.Validation("price", "must be a positive number"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, TypeValidation, problem.Type)
	assert.Equal(t, "price must be a positive number", problem.Detail)
	assert.Equal(t, map[string]any{"price": "must be a positive number"}, problem.Extensions["fields"])
	assert.Equal(t, "/dishes/7", problem.Instance)
}

func TestApplicationResponder_NotFoundThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading: %w", apperr.NotFound("dish", int64(7), nil))
	rec, problem := respondWith(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "dish", problem.Extensions["resourceType"])
	assert.EqualValues(t, 7, problem.Extensions["identifier"])
}

func TestApplicationResponder_Conflict(t *testing.T) {
	rec, problem := respondWith(t, apperr.Conflict("tel", int64(24600900), nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "tel '24600900' is already taken", problem.Detail)
}

func TestApplicationResponder_UnknownErrorIsOpaque(t *testing.T) {
	rec, problem := respondWith(t, stderrors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, problem.Detail)
}

func TestWithExtensionDoesNotShareMaps(t *testing.T) {
	base := ErrNotFound.WithExtension("a", 1)
	_ = base.WithExtension("b", 2)
	assert.Len(t, base.Extensions, 1)
	assert.Empty(t, ErrNotFound.Extensions)
}
