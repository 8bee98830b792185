package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"aurora/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrUnavailable, "redis not reachable")

	require.True(t, errors.Is(err, serrors.ErrUnavailable))
	require.False(t, errors.Is(err, serrors.ErrInternal))
	require.Equal(t, "redis not reachable", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "probe failed")

	require.True(t, errors.Is(err, serrors.ErrUnavailable))
	require.True(t, errors.Is(err, cause))
	require.Equal(t, "probe failed: connection refused", err.Error())
}

func TestWrap_SurvivesFmtWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("could not run check: %w", serrors.Wrap(serrors.ErrInternal, cause, "bad probe config"))

	require.True(t, errors.Is(err, serrors.ErrInternal))
	require.True(t, errors.Is(err, cause))
}

func TestKindOnly(t *testing.T) {
	err := serrors.KindOnly(serrors.ErrNotFound)

	require.True(t, errors.Is(err, serrors.ErrNotFound))
	require.Equal(t, "NOT_FOUND", err.Error())
}

func TestAs_ExtractsSemanticError(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.With(serrors.ErrConflict, "duplicate sku"))

	var serr *serrors.Error
	require.True(t, errors.As(err, &serr))
	require.Equal(t, serrors.ErrConflict, serr.Kind())
	require.Equal(t, "duplicate sku", serr.Message())
}
