package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuextract/internal/domain"
	"docuextract/internal/service"
)

func TestLifecycle_SuccessPath(t *testing.T) {
	l := service.NewLifecycle()
	assert.Equal(t, domain.StateIdle, l.Status().State)

	require.NoError(t, l.Begin())
	assert.Equal(t, domain.StateValidating, l.Status().State)

	require.NoError(t, l.AwaitResponse())
	assert.Equal(t, domain.StateAwaitingResponse, l.Status().State)

	require.NoError(t, l.Complete(nil))
	st := l.Status()
	assert.Equal(t, domain.StateDone, st.State)
	assert.Empty(t, st.LastError)
}

func TestLifecycle_FailureRecordsError(t *testing.T) {
	l := service.NewLifecycle()
	require.NoError(t, l.Begin())
	require.NoError(t, l.Complete(errors.New("boom")))

	st := l.Status()
	assert.Equal(t, domain.StateFailed, st.State)
	assert.Equal(t, "boom", st.LastError)

	// A new run clears the previous error.
	require.NoError(t, l.Begin())
	assert.Empty(t, l.Status().LastError)
}

func TestLifecycle_BeginWhileInFlight(t *testing.T) {
	l := service.NewLifecycle()
	require.NoError(t, l.Begin())
	assert.ErrorIs(t, l.Begin(), domain.ErrExtractionInProgress)

	require.NoError(t, l.AwaitResponse())
	assert.ErrorIs(t, l.Begin(), domain.ErrExtractionInProgress)

	require.NoError(t, l.Complete(nil))
	assert.NoError(t, l.Begin())
}

func TestLifecycle_IllegalTransitions(t *testing.T) {
	l := service.NewLifecycle()
	assert.ErrorIs(t, l.AwaitResponse(), domain.ErrIllegalTransition)
	assert.ErrorIs(t, l.Complete(nil), domain.ErrIllegalTransition)

	require.NoError(t, l.Begin())
	// validating cannot jump straight to done
	assert.ErrorIs(t, l.Complete(nil), domain.ErrIllegalTransition)
	assert.Equal(t, domain.StateValidating, l.Status().State)
}
