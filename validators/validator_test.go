package validators

import (
	"net/http"
	"strings"
	"testing"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatorRegistersReactionKind(t *testing.T) {
	var v *CustomValidator
	require.NotPanics(t, func() { v = NewValidator() })

	err := v.validator.Var("XX", "reaction_kind")
	assert.Error(t, err)
	assert.NoError(t, v.validator.Var("LO", "reaction_kind"))
}

func TestValidateReactionKind(t *testing.T) {
	v := NewValidator()

	for _, reaction := range []string{"HA", "ha", "haha", "THUMBS-UP", " TD "} {
		assert.NoError(t, v.Validate(&models.CreateReactionRequest{Reaction: reaction}), reaction)
	}

	err := v.Validate(&models.CreateReactionRequest{Reaction: "XX"})
	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	assert.Error(t, v.Validate(&models.CreateReactionRequest{}))
}

func TestValidateContent(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&models.CreatePostRequest{Content: "hello"}))
	assert.Error(t, v.Validate(&models.CreatePostRequest{Content: ""}))
	assert.Error(t, v.Validate(&models.CreateCommentRequest{Content: strings.Repeat("a", 1001)}))
}
