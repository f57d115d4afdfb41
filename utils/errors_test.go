package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateErrorUnwrapsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("update post: %w", CreateError(http.StatusForbidden, "Forbidden"))

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.Equal(t, "Forbidden", httpErr.Message)
	assert.Equal(t, "403: Forbidden", httpErr.Error())
}
