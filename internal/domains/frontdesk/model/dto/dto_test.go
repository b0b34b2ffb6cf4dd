package dto_test

import (
	"testing"
	"time"

	"hostel/internal/domains/frontdesk/model/dto"
	"hostel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInRequest_ToCheckIn(t *testing.T) {
	req := dto.CheckInRequest{
		Guest1:  dto.GuestRequest{Name: "Ana", CheckinDate: "2024-05-01"},
		Guest2:  &dto.GuestRequest{Name: "Bob"},
		Company: "Acme",
	}

	checkIn, err := req.ToCheckIn()
	require.NoError(t, err)

	assert.Equal(t, "Ana", checkIn.Guest1.Name)
	assert.Equal(t, 2024, checkIn.Guest1.CheckinDate.Year())
	assert.Equal(t, time.May, checkIn.Guest1.CheckinDate.Month())
	require.NotNil(t, checkIn.Guest2)
	assert.True(t, checkIn.Guest2.CheckinDate.IsZero())
	assert.Equal(t, "Acme", checkIn.Company)
}

func TestCheckInRequest_InvalidDate(t *testing.T) {
	req := dto.CheckInRequest{Guest1: dto.GuestRequest{Name: "Ana", CheckinDate: "01/05/2024"}}

	_, err := req.ToCheckIn()
	assert.Equal(t, failure.KindValidation, failure.GetKind(err))
}

func TestSecondGuestRequest_ToGuest(t *testing.T) {
	req := dto.SecondGuestRequest{Name: "Bob", Phone: "+351 912 345 678", CheckinDate: "2024-05-02"}

	guest, err := req.ToGuest()
	require.NoError(t, err)

	assert.Equal(t, "Bob", guest.Name)
	assert.Equal(t, "+351 912 345 678", guest.Phone, "normalization happens in the engine")
	assert.Equal(t, 2, guest.CheckinDate.Day())
}
