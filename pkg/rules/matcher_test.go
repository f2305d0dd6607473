package rules_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlekit/stylerules/pkg/patterns"
	"github.com/bundlekit/stylerules/pkg/rules"
	"github.com/bundlekit/stylerules/pkg/transform"
	"github.com/bundlekit/stylerules/pkg/types"
)

func TestMatcher_FirstMatchWins(t *testing.T) {
	// Two deliberately overlapping rules: every .css candidate satisfies
	// both patterns, so the outcome is decided purely by order.
	css := patterns.MustSuffix(".css")
	rs, err := rules.NewRuleSet([]rules.Rule{
		{Name: "first", Priority: 10, Pattern: css, Action: types.Ignore{}},
		{Name: "second", Priority: 20, Pattern: css, Action: types.CompileGlobal{}},
	}, nil)
	require.NoError(t, err)

	rule, ok := rules.NewMatcher().Resolve(rs, types.Candidate{Path: "/app/a.css"})
	require.True(t, ok)
	assert.Equal(t, "first", rule.Name)
	assert.IsType(t, types.Ignore{}, rule.Action)
}

func TestMatcher_NoMatch(t *testing.T) {
	rs, err := rules.NewRuleSet([]rules.Rule{
		{Name: "css-only", Priority: 10, Pattern: patterns.MustSuffix(".css"), Action: types.Ignore{}},
	}, nil)
	require.NoError(t, err)

	matcher := rules.NewMatcher()

	_, ok := matcher.Resolve(rs, types.Candidate{Path: "/app/a.ts"})
	assert.False(t, ok)

	action, ok := matcher.ResolveAction(rs, types.Candidate{Path: "/app/a.ts"})
	assert.False(t, ok)
	assert.Nil(t, action)
}

func TestMatcher_LaterRuleFiresWhenEarlierSkips(t *testing.T) {
	rs, err := rules.NewRuleSet([]rules.Rule{
		{Name: "never", Priority: 10, Pattern: patterns.NewNever(), Action: types.Ignore{}},
		{Name: "css", Priority: 20, Pattern: patterns.MustSuffix(".css"), Action: types.CompileGlobal{}},
	}, nil)
	require.NoError(t, err)

	rule, ok := rules.NewMatcher().Resolve(rs, types.Candidate{Path: "/app/a.css"})
	require.True(t, ok)
	assert.Equal(t, "css", rule.Name)
}

func TestMatcher_ConcurrentResolution(t *testing.T) {
	bctx, err := types.NewBuildContext("/app", false, true, true, "/app/_app.tsx")
	require.NoError(t, err)
	rs, err := rules.NewBuilder(transform.Static(), rules.Options{}).Build(context.Background(), bctx)
	require.NoError(t, err)

	matcher := rules.NewMatcher()
	corpus := candidateCorpus()

	// Baseline decisions, resolved serially.
	type decision struct {
		name string
		ok   bool
	}
	baseline := make([]decision, len(corpus))
	for i, c := range corpus {
		rule, ok := matcher.Resolve(rs, c)
		baseline[i] = decision{name: rule.Name, ok: ok}
	}

	const workers = 16
	var wg sync.WaitGroup
	failures := make(chan string, workers*len(corpus))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, c := range corpus {
				rule, ok := matcher.Resolve(rs, c)
				if ok != baseline[i].ok || rule.Name != baseline[i].name {
					failures <- c.Path
				}
			}
		}()
	}
	wg.Wait()
	close(failures)

	for path := range failures {
		t.Errorf("concurrent resolution diverged for %s", path)
	}
}
