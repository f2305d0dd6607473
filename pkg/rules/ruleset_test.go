package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/patterns"
	"github.com/bundlekit/stylerules/pkg/rules"
	"github.com/bundlekit/stylerules/pkg/types"
)

func TestNewRuleSet_Validation(t *testing.T) {
	css := patterns.MustSuffix(".css")

	tests := []struct {
		name     string
		ruleList []rules.Rule
		wantCode errors.ErrorCode
	}{
		{
			name: "valid_increasing_priorities",
			ruleList: []rules.Rule{
				{Name: "a", Priority: 10, Pattern: css, Action: types.Ignore{}},
				{Name: "b", Priority: 20, Pattern: css, Action: types.Ignore{}},
			},
		},
		{
			name: "equal_priorities_rejected",
			ruleList: []rules.Rule{
				{Name: "a", Priority: 10, Pattern: css, Action: types.Ignore{}},
				{Name: "b", Priority: 10, Pattern: css, Action: types.Ignore{}},
			},
			wantCode: errors.ErrRuleOrder,
		},
		{
			name: "decreasing_priorities_rejected",
			ruleList: []rules.Rule{
				{Name: "a", Priority: 20, Pattern: css, Action: types.Ignore{}},
				{Name: "b", Priority: 10, Pattern: css, Action: types.Ignore{}},
			},
			wantCode: errors.ErrRuleOrder,
		},
		{
			name: "missing_name_rejected",
			ruleList: []rules.Rule{
				{Priority: 10, Pattern: css, Action: types.Ignore{}},
			},
			wantCode: errors.ErrRuleInvalid,
		},
		{
			name: "missing_pattern_rejected",
			ruleList: []rules.Rule{
				{Name: "a", Priority: 10, Action: types.Ignore{}},
			},
			wantCode: errors.ErrRuleInvalid,
		},
		{
			name: "missing_action_rejected",
			ruleList: []rules.Rule{
				{Name: "a", Priority: 10, Pattern: css},
			},
			wantCode: errors.ErrRuleInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := rules.NewRuleSet(tt.ruleList, nil)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				assert.Nil(t, rs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.ruleList), rs.Len())
		})
	}
}

func TestRuleSet_RulesReturnsCopy(t *testing.T) {
	css := patterns.MustSuffix(".css")
	rs, err := rules.NewRuleSet([]rules.Rule{
		{Name: "a", Priority: 10, Pattern: css, Action: types.Ignore{}},
	}, nil)
	require.NoError(t, err)

	out := rs.Rules()
	out[0].Name = "mutated"

	assert.Equal(t, "a", rs.Rules()[0].Name)
}

func TestRuleSet_Extraction(t *testing.T) {
	css := patterns.MustSuffix(".css")
	ruleList := []rules.Rule{{Name: "a", Priority: 10, Pattern: css, Action: types.Ignore{}}}

	rs, err := rules.NewRuleSet(ruleList, nil)
	require.NoError(t, err)
	_, ok := rs.Extraction()
	assert.False(t, ok)

	rs, err = rules.NewRuleSet(ruleList, &types.ExtractionDirective{
		FilenameTemplate:    "static/css/[contenthash].css",
		IgnoreOrderWarnings: true,
	})
	require.NoError(t, err)
	directive, ok := rs.Extraction()
	require.True(t, ok)
	assert.Equal(t, "static/css/[contenthash].css", directive.FilenameTemplate)
}
