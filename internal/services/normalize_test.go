package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		max     int
		want    string
		wantErr string
	}{
		{name: "trimmed", raw: "  Reading  ", max: 120, want: "Reading"},
		{name: "empty", raw: "", max: 120, wantErr: "name is required"},
		{name: "whitespace only", raw: " \t\n", max: 120, wantErr: "name is required"},
		{name: "at limit", raw: strings.Repeat("a", 80), max: 80, want: strings.Repeat("a", 80)},
		{name: "over limit", raw: strings.Repeat("a", 81), max: 80, wantErr: "name is too long (max 80)"},
		{name: "multibyte counted as characters", raw: strings.Repeat("é", 120), max: 120, want: strings.Repeat("é", 120)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeName(tt.raw, tt.max)
			if tt.wantErr != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalText(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.Nil(t, optionalText(nil))
	assert.Nil(t, optionalText(s("")))
	assert.Nil(t, optionalText(s("   ")))
	assert.Equal(t, "Go", *optionalText(s("  Go ")))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", normalizeEmail("  A@X.com "))
}
