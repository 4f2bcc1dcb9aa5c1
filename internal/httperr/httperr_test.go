package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	Respond(c, zerolog.Nop(), err)
	return w
}

func TestRespond_Validation(t *testing.T) {
	w := respond(t, ErrValidation(
		Field("appointment_date", "must be today or later"),
	))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"appointment_date"`)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestRespond_NotFound(t *testing.T) {
	w := respond(t, ErrNotFound("booking"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "booking not found")
}

func TestRespond_Authorization(t *testing.T) {
	w := respond(t, ErrForbidden("not the booking owner"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not the booking owner")
}

func TestRespond_UnexpectedHidesDetail(t *testing.T) {
	w := respond(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestErrorTypesMatchWithAs(t *testing.T) {
	var ve ValidationError
	assert.True(t, errors.As(ErrValidation(Field("x", "y")), &ve))
	assert.Equal(t, "validation failed: x", ve.Error())

	var nf NotFoundError
	assert.True(t, errors.As(ErrNotFound("mechanic"), &nf))
	assert.Equal(t, "mechanic", nf.Resource)

	var ae AuthorizationError
	assert.True(t, errors.As(ErrForbidden("nope"), &ae))
	assert.Equal(t, "nope", ae.Error())
}
