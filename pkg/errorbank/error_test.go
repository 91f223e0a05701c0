package errorbank

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode())
	require.Equal(t, http.StatusConflict, Conflict("x").StatusCode())
	require.Equal(t, http.StatusNotFound, NotFound("x").StatusCode())
	require.Equal(t, http.StatusUnprocessableEntity, Unprocessable("x").StatusCode())
	require.Equal(t, http.StatusInternalServerError, Internal("x").StatusCode())
}

func TestViolations(t *testing.T) {
	err := Validation([]string{"a is required", "b is required"})
	require.Equal(t, []string{"a is required", "b is required"}, Violations(err))
	require.Nil(t, Violations(Internal("boom")))
	require.Nil(t, Violations(nil))
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("disk full")
	appErr := From(fmt.Errorf("save: %w", cause))
	require.Equal(t, KindInternal, appErr.Kind())
	require.ErrorIs(t, appErr, cause)
}

func TestFromPreservesAppErrors(t *testing.T) {
	conflict := Conflict("duplicate order")
	wrapped := fmt.Errorf("create: %w", conflict)
	require.Equal(t, KindConflict, From(wrapped).Kind())
	require.Equal(t, "duplicate order", From(wrapped).Message())
}
