package handler

import (
	"encoding/json"
	"testing"

	"github.com/recipe-book/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBindErrorMessage_HidesDecoderDetails(t *testing.T) {
	var req model.RecipeRequest

	err := json.Unmarshal([]byte(`{"num_of_servings":true}`), &req)
	assert.Equal(t, "num_of_servings is invalid", bindErrorMessage(err))

	err = json.Unmarshal([]byte(`{"name":`), &req)
	assert.Equal(t, "invalid request body", bindErrorMessage(err))
}
