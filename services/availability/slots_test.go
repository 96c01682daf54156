package availability

import (
	"testing"

	"taskweave/models"

	"github.com/stretchr/testify/require"
)

func TestSlotTemplate(t *testing.T) {
	slots := SlotTemplate()
	require.Len(t, slots, 24)
	require.Equal(t, "0:00 - 1:00", slots[0])
	require.Equal(t, "9:00 - 10:00", slots[9])
	require.Equal(t, "23:00 - 24:00", slots[23])
}

func TestSlotTemplateUnifiesWithStoredForm(t *testing.T) {
	// Every template label must normalize to the form storage uses, so a
	// stored slot always matches its rendered counterpart.
	week := models.WeekAvailability{}
	for _, slot := range SlotTemplate() {
		week.Add("monday", slot)
	}
	for _, slot := range SlotTemplate() {
		require.True(t, week.Has("monday", slot))
	}
	require.Equal(t, 24, week.TotalHours())
}

func TestDisplayDay(t *testing.T) {
	require.Equal(t, "Sunday", DisplayDay("sunday"))
	require.Equal(t, "Wednesday", DisplayDay("wednesday"))
	require.Equal(t, "", DisplayDay(""))
}
