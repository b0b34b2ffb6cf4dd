package model

import (
	"slices"
	"time"

	"hostel/shared/model"
)

const (
	TableName  = "room_history"
	EntityName = "history"

	FieldID                 = "id"
	FieldRoomID             = "room_id"
	FieldRoomNumber         = "room_number"
	FieldRoomType           = "room_type"
	FieldCompanyName        = "company_name"
	FieldGuest1Name         = "guest1_name"
	FieldGuest1Phone        = "guest1_phone"
	FieldGuest1CheckinDate  = "guest1_checkin_date"
	FieldGuest1CheckoutDate = "guest1_checkout_date"
	FieldGuest2Name         = "guest2_name"
	FieldGuest2Phone        = "guest2_phone"
	FieldGuest2CheckinDate  = "guest2_checkin_date"
	FieldGuest2CheckoutDate = "guest2_checkout_date"
	FieldCheckoutDate       = "checkout_date"
	FieldNotes              = "notes"
	FieldCreatedAt          = "created_at"
)

// Entry is one occupancy episode of a room. CheckoutDate stays NULL while the episode is open.
type Entry struct {
	ID                 string     `db:"id"`
	RoomID             string     `db:"room_id"`
	RoomNumber         string     `db:"room_number"`
	RoomType           string     `db:"room_type"`
	CompanyName        *string    `db:"company_name"`
	Guest1Name         string     `db:"guest1_name"`
	Guest1Phone        *string    `db:"guest1_phone"`
	Guest1CheckinDate  time.Time  `db:"guest1_checkin_date"`
	Guest1CheckoutDate *time.Time `db:"guest1_checkout_date"`
	Guest2Name         *string    `db:"guest2_name"`
	Guest2Phone        *string    `db:"guest2_phone"`
	Guest2CheckinDate  *time.Time `db:"guest2_checkin_date"`
	Guest2CheckoutDate *time.Time `db:"guest2_checkout_date"`
	CheckoutDate       *time.Time `db:"checkout_date"`
	Notes              *string    `db:"notes"`
	model.Metadata
}

func (e *Entry) IsOpen() bool {
	return e.CheckoutDate == nil
}

func (e *Entry) HasSecondGuest() bool {
	return e.Guest2Name != nil && *e.Guest2Name != ""
}

// GuestCount is 2 when a second guest ever joined the episode.
func (e *Entry) GuestCount() int {
	if e.HasSecondGuest() {
		return 2
	}

	return 1
}

// Stats aggregates a set of entries for the history dashboard.
type Stats struct {
	TotalBookings  int `db:"total_bookings"`
	TotalGuests    int `db:"total_guests"`
	CompletedStays int `db:"completed_stays"`
	CurrentGuests  int `db:"current_guests"`
}

// MonthGroup holds the entries whose first guest checked in during Month.
type MonthGroup struct {
	Month       time.Time
	Entries     []Entry
	TotalGuests int
	Active      int
	Finished    int
}

// GroupByMonth buckets entries by the month of the first check-in, newest month first.
// Entries inside a month keep the order they were given in.
func GroupByMonth(entries []Entry) []MonthGroup {
	index := map[time.Time]int{}
	groups := []MonthGroup{}

	for _, entry := range entries {
		checkin := entry.Guest1CheckinDate
		month := time.Date(checkin.Year(), checkin.Month(), 1, 0, 0, 0, 0, checkin.Location())

		pos, ok := index[month]
		if !ok {
			pos = len(groups)
			index[month] = pos

			groups = append(groups, MonthGroup{Month: month})
		}

		group := &groups[pos]
		group.Entries = append(group.Entries, entry)
		group.TotalGuests += entry.GuestCount()

		if entry.IsOpen() {
			group.Active++
		} else {
			group.Finished++
		}
	}

	slices.SortFunc(groups, func(a, b MonthGroup) int {
		return b.Month.Compare(a.Month)
	})

	return groups
}
