package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "Student signup password",
			password:    "hostel-gate-2026",
			expectError: false,
		},
		{
			name:        "Empty password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedPassword)
				assert.NotEqual(t, tt.password, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}
	stored, err := hashService.HashPassword("hostel-gate-2026")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		expectMatch bool
	}{
		{
			name:        "Login with the signup password",
			password:    "hostel-gate-2026",
			expectMatch: true,
		},
		{
			name:        "Login with a wrong password",
			password:    "hostel-gate-2025",
			expectMatch: false,
		},
		{
			name:        "Login with an empty password",
			password:    "",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := hashService.ComparePassword(stored, tt.password)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}
