package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/fixture"
	"kerjabantu-service/src/internal/store"
)

func TestParseJobStatus(t *testing.T) {
	s, err := store.ParseJobStatus("assigned")
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusAssigned, s)

	_, err = store.ParseJobStatus("paused")
	assert.ErrorIs(t, err, store.ErrUnknownJobStatus)
}

func TestIsTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to entity.JobStatus
		allowed  bool
	}{
		{entity.JobStatusOpen, entity.JobStatusAssigned, true},
		{entity.JobStatusOpen, entity.JobStatusCancelled, true},
		{entity.JobStatusOpen, entity.JobStatusCompleted, false},
		{entity.JobStatusAssigned, entity.JobStatusCompleted, true},
		{entity.JobStatusAssigned, entity.JobStatusCancelled, true},
		{entity.JobStatusAssigned, entity.JobStatusOpen, false},
		{entity.JobStatusCompleted, entity.JobStatusCancelled, false},
		{entity.JobStatusCancelled, entity.JobStatusOpen, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allowed, store.IsTransitionAllowed(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestCompleteJob(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.CompleteJob("job-002"))
	j, _ := st.GetJobByID("job-002")
	assert.Equal(t, entity.JobStatusCompleted, j.Status)
	assert.Equal(t, "km-004", j.KerjaMateID)

	assert.ErrorIs(t, st.CompleteJob("job-001"), store.ErrInvalidTransition)
	assert.ErrorIs(t, st.CompleteJob("job-002"), store.ErrInvalidTransition)
	assert.ErrorIs(t, st.CompleteJob("job-404"), store.ErrJobNotFound)
}

func TestCancelJob_OpenJobHasNoRefund(t *testing.T) {
	st := newStore(t)

	refund, err := st.CancelJob("job-001")
	require.NoError(t, err)
	assert.Zero(t, refund)
	assert.EqualValues(t, 500000, balance(t, st))

	j, _ := st.GetJobByID("job-001")
	assert.Equal(t, entity.JobStatusCancelled, j.Status)
}

func TestCancelJob_AssignedOwnJobRefundsBudget(t *testing.T) {
	st := newStore(t)
	fillDraft(st, "Party", 300000)
	id := st.SubmitJob()
	require.True(t, st.HireKerjaMate(id, "km-002"))
	require.EqualValues(t, 200000, balance(t, st))

	refund, err := st.CancelJob(id)
	require.NoError(t, err)
	assert.EqualValues(t, 300000, refund)
	assert.EqualValues(t, 500000, balance(t, st))

	j, _ := st.GetJobByID(id)
	assert.Equal(t, entity.JobStatusCancelled, j.Status)
	assert.Empty(t, j.KerjaMateID)
}

func TestCancelJob_PreassignedJobRefundsNothing(t *testing.T) {
	st := newStore(t)
	user2 := fixture.Users()[1]
	st.SetCurrentUser(&user2)

	refund, err := st.CancelJob("job-002")
	require.NoError(t, err)
	assert.Zero(t, refund)
	assert.EqualValues(t, 250000, balance(t, st))

	j, _ := st.GetJobByID("job-002")
	assert.Equal(t, entity.JobStatusCancelled, j.Status)
	assert.Empty(t, j.KerjaMateID)
}

func TestCancelJob_RefundsPayerOfForeignJob(t *testing.T) {
	st := newStore(t)

	require.True(t, st.HireKerjaMate("job-005", "km-001"))
	require.EqualValues(t, 350000, balance(t, st))

	refund, err := st.CancelJob("job-005")
	require.NoError(t, err)
	assert.EqualValues(t, 150000, refund)
	assert.EqualValues(t, 500000, balance(t, st))
}

func TestCancelJob_RefundWaitsForSignedOutPayer(t *testing.T) {
	st := newStore(t)
	payer, _ := st.CurrentUser()
	require.True(t, st.HireKerjaMate("job-005", "km-001"))
	paid, _ := st.CurrentUser()

	other := fixture.Users()[1]
	st.SetCurrentUser(&other)
	refund, err := st.CancelJob("job-005")
	require.NoError(t, err)
	assert.EqualValues(t, 150000, refund)
	assert.EqualValues(t, 250000, balance(t, st))

	st.SetCurrentUser(&paid)
	assert.EqualValues(t, payer.WalletBalance, balance(t, st))

	// credited once
	st.SetCurrentUser(&paid)
	assert.EqualValues(t, 350000, balance(t, st))
}

func TestCompleteJob_KeepsPayment(t *testing.T) {
	st := newStore(t)
	require.True(t, st.HireKerjaMate("job-005", "km-001"))
	require.NoError(t, st.CompleteJob("job-005"))

	_, err := st.CancelJob("job-005")
	assert.ErrorIs(t, err, store.ErrInvalidTransition)
	assert.EqualValues(t, 350000, balance(t, st))
}

func TestCancelJob_TerminalStates(t *testing.T) {
	st := newStore(t)

	_, err := st.CancelJob("job-003")
	assert.ErrorIs(t, err, store.ErrInvalidTransition)

	_, err = st.CancelJob("job-001")
	require.NoError(t, err)
	_, err = st.CancelJob("job-001")
	assert.ErrorIs(t, err, store.ErrInvalidTransition)

	_, err = st.CancelJob("job-404")
	assert.ErrorIs(t, err, store.ErrJobNotFound)
}

func TestHireKerjaMate_CancelledJobCannotBeHired(t *testing.T) {
	st := newStore(t)
	_, err := st.CancelJob("job-005")
	require.NoError(t, err)

	assert.False(t, st.HireKerjaMate("job-005", "km-001"))
	assert.EqualValues(t, 500000, balance(t, st))
}
