package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid slug - single word",
			slug:    "launch",
			wantErr: false,
		},
		{
			name:    "valid slug - with hyphens",
			slug:    "launch-plan-2025",
			wantErr: false,
		},
		{
			name:    "valid slug - all numbers",
			slug:    "12345",
			wantErr: false,
		},
		{
			name:    "valid slug - single character",
			slug:    "a",
			wantErr: false,
		},
		{
			name:    "valid slug - max length",
			slug:    strings.Repeat("a", 64),
			wantErr: false,
		},
		{
			name:    "invalid - empty slug",
			slug:    "",
			wantErr: true,
			errMsg:  "slug cannot be empty",
		},
		{
			name:    "invalid - too long (65 chars)",
			slug:    strings.Repeat("a", 65),
			wantErr: true,
			errMsg:  "must not exceed 64 characters",
		},
		{
			name:    "invalid - uppercase letters",
			slug:    "Launch-Plan",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
		{
			name:    "invalid - leading hyphen",
			slug:    "-launch",
			wantErr: true,
			errMsg:  "cannot start or end with a hyphen",
		},
		{
			name:    "invalid - trailing hyphen",
			slug:    "launch-",
			wantErr: true,
			errMsg:  "cannot start or end with a hyphen",
		},
		{
			name:    "invalid - consecutive hyphens",
			slug:    "launch--plan",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
		{
			name:    "invalid - with space",
			slug:    "launch plan",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
		{
			name:    "invalid - with underscore",
			slug:    "launch_plan",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid title",
			title:   "Launch plan",
			wantErr: false,
		},
		{
			name:    "valid title - max length",
			title:   strings.Repeat("a", 200),
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			title:   "",
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name:    "invalid - whitespace only",
			title:   "   \t",
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name:    "invalid - too long (201 chars)",
			title:   strings.Repeat("a", 201),
			wantErr: true,
			errMsg:  "must not exceed 200 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
