package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

func TestStruct_User(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		username    string
		wantMessage string
	}{
		{
			name:     "valid username",
			username: "alice",
		},
		{
			name:        "empty username",
			username:    "",
			wantMessage: "Path `username` is required.",
		},
		{
			name:        "too short",
			username:    "al",
			wantMessage: "Path `username` (`al`) is shorter than the minimum allowed length (3).",
		},
		{
			name:        "too long",
			username:    "abcdefghijk",
			wantMessage: "Path `username` (`abcdefghijk`) is longer than the maximum allowed length (10).",
		},
		{
			name:     "boundary lengths are allowed",
			username: "abcdefghij",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(models.User{Username: tt.username})
			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}

			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "username", ve.Field)
			assert.Equal(t, tt.wantMessage, ve.Message)
		})
	}
}

func TestStruct_ExerciseReportsDescriptionFirst(t *testing.T) {
	v := New()

	err := v.Struct(models.Exercise{Description: "ab", Duration: -1})

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "description", ve.Field)
	assert.Contains(t, ve.Message, "minimum allowed length (3)")
}

func TestStruct_ExerciseDuration(t *testing.T) {
	v := New()

	for _, d := range []float64{0, -5} {
		err := v.Struct(models.Exercise{Description: "run", Duration: d})

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "duration", ve.Field)
		assert.Contains(t, ve.Message, "must be greater than 0")
	}

	assert.NoError(t, v.Struct(models.Exercise{Description: "run", Duration: 0.5}))
}

func TestCastAndRequired(t *testing.T) {
	assert.Equal(t, "Cast to Number failed for value \"abc\" at path `duration`.", CastError("duration", "abc").Message)
	assert.Equal(t, "Path `duration` is required.", Required("duration").Message)
}
