package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/store"
)

func TestUpdateJobDraft_MergesShallowly(t *testing.T) {
	st := newStore(t)
	title := "Fix the sink"
	budget := int64(75000)
	st.UpdateJobDraft(entity.JobDraftPatch{Title: &title, Budget: &budget})

	category := "Repair"
	st.UpdateJobDraft(entity.JobDraftPatch{Category: &category})

	d := st.JobDraft()
	assert.Equal(t, "Fix the sink", d.Title)
	assert.Equal(t, "Repair", d.Category)
	assert.EqualValues(t, 75000, d.Budget)
	assert.Equal(t, 1, d.Duration)
}

func TestUpdateJobDraft_MergesLocationFieldByField(t *testing.T) {
	st := newStore(t)
	address := "Kemang, Jakarta Selatan"
	st.UpdateJobDraft(entity.JobDraftPatch{Location: &entity.LocationPatch{Address: &address}})

	lat, lng := -6.26, 106.81
	st.UpdateJobDraft(entity.JobDraftPatch{Location: &entity.LocationPatch{Lat: &lat, Lng: &lng}})

	assert.Equal(t, entity.Location{Lat: -6.26, Lng: 106.81, Address: "Kemang, Jakarta Selatan"}, st.JobDraft().Location)
}

func TestApplyDraftField(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.ApplyDraftField("title", "Babysitter for Saturday"))
	require.NoError(t, st.ApplyDraftField("duration", "4"))
	require.NoError(t, st.ApplyDraftField("budget", 180000.0))
	require.NoError(t, st.ApplyDraftField("skills", []any{"Childcare", "Babysitting"}))
	require.NoError(t, st.ApplyDraftField("location.address", "Depok"))
	require.NoError(t, st.ApplyDraftField("location.lat", "-6.4"))

	d := st.JobDraft()
	assert.Equal(t, "Babysitter for Saturday", d.Title)
	assert.Equal(t, 4, d.Duration)
	assert.EqualValues(t, 180000, d.Budget)
	assert.Equal(t, []string{"Childcare", "Babysitting"}, d.Skills)
	assert.Equal(t, entity.Location{Lat: -6.4, Address: "Depok"}, d.Location)
}

func TestApplyDraftField_SkillStringIsOneTag(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.ApplyDraftField("skills", "House Maintenance"))
	assert.Equal(t, []string{"House Maintenance"}, st.JobDraft().Skills)

	assert.ErrorIs(t, st.ApplyDraftField("skills", "   "), store.ErrInvalidDraftValue)
	assert.Equal(t, []string{"House Maintenance"}, st.JobDraft().Skills)
}

func TestApplyDraftField_Errors(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.ApplyDraftField("budget", 1000))

	assert.ErrorIs(t, st.ApplyDraftField("location.city", "Bogor"), store.ErrUnknownDraftField)
	assert.ErrorIs(t, st.ApplyDraftField("budget", "a lot"), store.ErrInvalidDraftValue)
	assert.EqualValues(t, 1000, st.JobDraft().Budget)
}

func TestResetJobDraft(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.ApplyDraftField("title", "Something"))
	st.ResetJobDraft()
	assert.Equal(t, entity.NewJobDraft(), st.JobDraft())
}

func TestJobDraftIsACopy(t *testing.T) {
	st := newStore(t)
	st.UpdateJobDraft(entity.JobDraftPatch{Skills: []string{"Cooking"}})
	d := st.JobDraft()
	d.Skills[0] = "Changed"
	assert.Equal(t, []string{"Cooking"}, st.JobDraft().Skills)
}
