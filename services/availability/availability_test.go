package availability

import (
	"context"
	"errors"
	"testing"

	"taskweave/models"
	"taskweave/upstream"

	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	upstream.API

	week     models.WeekAvailability
	fetchErr error
	saved    models.WeekAvailability
	saveErr  error
}

func (f *fakeAPI) FetchAvailability(ctx context.Context, sess models.Session) (models.WeekAvailability, error) {
	return f.week, f.fetchErr
}

func (f *fakeAPI) SaveAvailability(ctx context.Context, sess models.Session, week models.WeekAvailability) error {
	f.saved = week
	return f.saveErr
}

var sess = models.Session{UserID: "42", Token: "t"}

func TestLoadNeverDeclared(t *testing.T) {
	svc := &DefaultAvailabilityService{API: &fakeAPI{week: nil}}

	week, err := svc.Load(context.Background(), sess)
	require.NoError(t, err)
	require.Nil(t, week, "an absent grid is not an error")
}

func TestLoadDeclared(t *testing.T) {
	declared := models.WeekAvailability{"monday": {"9:00-10:00"}}
	svc := &DefaultAvailabilityService{API: &fakeAPI{week: declared}}

	week, err := svc.Load(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, declared, week)
}

func TestLoadWrapsUpstreamError(t *testing.T) {
	svc := &DefaultAvailabilityService{API: &fakeAPI{fetchErr: errors.New("boom")}}

	_, err := svc.Load(context.Background(), sess)
	require.Error(t, err)
}

func TestToggleFlipsSlot(t *testing.T) {
	svc := &DefaultAvailabilityService{}
	week := models.WeekAvailability{}

	require.NoError(t, svc.Toggle(week, "monday", "9:00 - 10:00"))
	require.True(t, week.Has("monday", "9:00-10:00"))

	// A second toggle of the same slot, differently spelled, removes it.
	require.NoError(t, svc.Toggle(week, "monday", "9:00-10:00"))
	require.False(t, week.Has("monday", "9:00-10:00"))
}

func TestToggleIsLocalOnly(t *testing.T) {
	api := &fakeAPI{}
	svc := &DefaultAvailabilityService{API: api}
	week := models.WeekAvailability{}

	require.NoError(t, svc.Toggle(week, "tuesday", "10:00-11:00"))
	require.Nil(t, api.saved, "toggling never persists on its own")
}

func TestToggleRejectsUnknownDay(t *testing.T) {
	svc := &DefaultAvailabilityService{}
	require.Error(t, svc.Toggle(models.WeekAvailability{}, "Monday", "9:00-10:00"))
	require.Error(t, svc.Toggle(models.WeekAvailability{}, "someday", "9:00-10:00"))
}

func TestSaveSendsGrid(t *testing.T) {
	api := &fakeAPI{}
	svc := &DefaultAvailabilityService{API: api}
	week := models.WeekAvailability{"friday": {"15:00-16:00"}}

	require.NoError(t, svc.Save(context.Background(), sess, week))
	require.Equal(t, week, api.saved)
}

func TestSaveNilGridSendsEmptyGrid(t *testing.T) {
	api := &fakeAPI{}
	svc := &DefaultAvailabilityService{API: api}

	require.NoError(t, svc.Save(context.Background(), sess, nil))
	require.NotNil(t, api.saved)
	require.Equal(t, 0, api.saved.TotalHours())
}
