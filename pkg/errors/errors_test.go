package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrConfigInvalid, "both targets selected")

	assert.Equal(t, errors.ErrConfigInvalid, err.Code)
	assert.Equal(t, "both targets selected", err.Message)
	assert.Equal(t, "[CONFIG_INVALID] both targets selected", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRuleOrder, "rule %q breaks priority order", "global-catchall")

	assert.Equal(t, errors.ErrRuleOrder, err.Code)
	assert.Contains(t, err.Error(), `rule "global-catchall" breaks priority order`)
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := errors.Wrap(cause, errors.ErrTransformResolve, "resolving transform config")

		require.NotNil(t, err)
		assert.Equal(t, "[TRANSFORM_RESOLVE] resolving transform config: connection refused", err.Error())
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
	})
}

func TestIs(t *testing.T) {
	err := errors.Newf(errors.ErrConfigInvalid, "bad target")
	wrapped := fmt.Errorf("loading config: %w", err)

	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrConfigInvalid, "any message")))
	assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrConfigLoad, "any message")))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrPolicyViolation, "global css outside entry")
	wrapped := fmt.Errorf("check failed: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrPolicyViolation))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrPolicyViolation))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrRuleInvalid, errors.GetErrorCode(errors.New(errors.ErrRuleInvalid, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPolicyViolation, "rejected").
		WithDetail("path", "/app/styles/global.css").
		WithDetail("issuer", "/app/components/button.tsx")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/app/styles/global.css", details["path"])
	assert.Equal(t, "/app/components/button.tsx", details["issuer"])
}
