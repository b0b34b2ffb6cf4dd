package model_test

import (
	"testing"
	"time"

	"hostel/internal/domains/history/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, _ := time.Parse(time.DateOnly, value)

	return t
}

func TestEntry_GuestCount(t *testing.T) {
	bob := "Bob"
	empty := ""

	assert.Equal(t, 1, (&model.Entry{Guest1Name: "Ana"}).GuestCount())
	assert.Equal(t, 1, (&model.Entry{Guest1Name: "Ana", Guest2Name: &empty}).GuestCount())
	assert.Equal(t, 2, (&model.Entry{Guest1Name: "Ana", Guest2Name: &bob}).GuestCount())
}

func TestGroupByMonth(t *testing.T) {
	bob := "Bob"
	closed := day("2024-03-20")

	entries := []model.Entry{
		{ID: "1", Guest1Name: "Ana", Guest1CheckinDate: day("2024-03-02"), CheckoutDate: &closed},
		{ID: "2", Guest1Name: "Caio", Guest1CheckinDate: day("2024-05-10"), Guest2Name: &bob},
		{ID: "3", Guest1Name: "Dora", Guest1CheckinDate: day("2024-03-28")},
	}

	groups := model.GroupByMonth(entries)
	require.Len(t, groups, 2)

	assert.Equal(t, day("2024-05-01"), groups[0].Month)
	assert.Equal(t, 2, groups[0].TotalGuests)
	assert.Equal(t, 1, groups[0].Active)

	assert.Equal(t, day("2024-03-01"), groups[1].Month)
	assert.Len(t, groups[1].Entries, 2)
	assert.Equal(t, "1", groups[1].Entries[0].ID)
	assert.Equal(t, 2, groups[1].TotalGuests)
	assert.Equal(t, 1, groups[1].Active)
	assert.Equal(t, 1, groups[1].Finished)
}

func TestGroupByMonth_Empty(t *testing.T) {
	assert.Empty(t, model.GroupByMonth(nil))
}
