package patterns_test

import (
	"testing"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/patterns"
	"github.com/bundlekit/stylerules/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuerPattern_Creation(t *testing.T) {
	p, err := patterns.NewIssuer("/app/_app.tsx")
	require.NoError(t, err)
	assert.Equal(t, patterns.IssuerPatternName, p.Name())

	p, err = patterns.NewIssuer("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
	assert.Nil(t, p)
}

func TestIssuerPattern_Match(t *testing.T) {
	p, err := patterns.NewIssuer("/app/_app.tsx")
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate types.Candidate
		want      bool
	}{
		{
			name:      "exact_issuer_matches",
			candidate: types.Candidate{Path: "/app/styles/global.css", Issuer: "/app/_app.tsx"},
			want:      true,
		},
		{
			name:      "unclean_issuer_matches_after_normalization",
			candidate: types.Candidate{Path: "/app/styles/global.css", Issuer: "/app/./_app.tsx"},
			want:      true,
		},
		{
			name:      "different_issuer_does_not_match",
			candidate: types.Candidate{Path: "/app/styles/global.css", Issuer: "/app/pages/index.tsx"},
			want:      false,
		},
		{
			name:      "no_issuer_never_matches",
			candidate: types.Candidate{Path: "/app/styles/global.css"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Match(tt.candidate))
		})
	}
}
