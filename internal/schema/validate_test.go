package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }
func str(v string) *string     { return &v }
func num(v int) *int           { return &v }

func TestValidateCreate_Valid(t *testing.T) {
	v := NewValidator()

	result := v.Validate(CreateMovieRequest{Name: "Inception", Year: 2010, Rating: float(7.5)})
	require.True(t, result.Success)
	assert.Empty(t, result.Error)
}

func TestValidateCreate_RatingZeroIsValid(t *testing.T) {
	v := NewValidator()

	result := v.Validate(CreateMovieRequest{Name: "Dogville", Year: 2003, Rating: float(0)})
	assert.True(t, result.Success)
}

func TestValidateCreate_EmptyPayload(t *testing.T) {
	v := NewValidator()

	result := v.Validate(CreateMovieRequest{})
	require.False(t, result.Success)
	assert.Equal(t, "name is required, year is required, rating is required", result.Error)
}

func TestValidateCreate_YearBounds(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		year    int
		wantErr string
	}{
		{"too early", 1899, "year must be greater than or equal to 1900"},
		{"too late", 2025, "year must be less than or equal to 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(CreateMovieRequest{Name: "Metropolis", Year: tt.year, Rating: float(8.3)})
			require.False(t, result.Success)
			assert.Equal(t, tt.wantErr, result.Error)
		})
	}
}

func TestValidateCreate_MultipleViolationsJoined(t *testing.T) {
	v := NewValidator()

	result := v.Validate(CreateMovieRequest{Name: "", Year: 2030, Rating: float(5)})
	require.False(t, result.Success)
	// One message per violated constraint, joined in field order.
	assert.Equal(t, "name is required, year must be less than or equal to 2024", result.Error)
}

func TestValidateUpdate_AllFieldsOptional(t *testing.T) {
	v := NewValidator()

	result := v.Validate(UpdateMovieRequest{})
	assert.True(t, result.Success)
}

func TestValidateUpdate_ConstraintsApplyWhenPresent(t *testing.T) {
	v := NewValidator()

	result := v.Validate(UpdateMovieRequest{Year: num(2025)})
	require.False(t, result.Success)
	assert.Equal(t, "year must be less than or equal to 2024", result.Error)

	result = v.Validate(UpdateMovieRequest{Name: str("")})
	require.False(t, result.Success)
	assert.Equal(t, "name must contain at least 1 character(s)", result.Error)
}

func TestValidateUpdate_PartialValid(t *testing.T) {
	v := NewValidator()

	result := v.Validate(UpdateMovieRequest{Rating: float(9.1)})
	assert.True(t, result.Success)
}
