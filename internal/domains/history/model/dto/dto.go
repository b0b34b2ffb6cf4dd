package dto

import (
	"time"

	"hostel/internal/domains/history/model"
	gDto "hostel/shared/dto"
)

type QueryRequest struct {
	RoomID     string `json:"room_id"     validate:"omitempty,uuid"`
	RoomNumber string `json:"room_number" validate:"omitempty,max=10"`
	StartDate  string `json:"start_date"  validate:"omitempty,dateonly"`
	EndDate    string `json:"end_date"    validate:"omitempty,dateonly"`
	GuestName  string `json:"guest_name"  validate:"omitempty,max=100"`
	Company    string `json:"company"     validate:"omitempty,max=100"`
	Limit      int    `json:"limit"       validate:"omitempty,min=1"`
}

type RangeRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,dateonly"`
	EndDate   string `json:"end_date"   validate:"omitempty,dateonly"`
}

type UpdateEntryRequest struct {
	Notes       *string `db:"notes"        json:"notes"        validate:"omitempty,max=500"`
	CompanyName *string `db:"company_name" json:"company_name" validate:"omitempty,max=100"`
}

type EntryResponse struct {
	ID                 string  `json:"id"`
	RoomID             string  `json:"room_id"`
	RoomNumber         string  `json:"room_number"`
	RoomType           string  `json:"room_type"`
	CompanyName        *string `json:"company_name"`
	Guest1Name         string  `json:"guest1_name"`
	Guest1Phone        *string `json:"guest1_phone"`
	Guest1CheckinDate  string  `json:"guest1_checkin_date"`
	Guest1CheckoutDate *string `json:"guest1_checkout_date"`
	Guest2Name         *string `json:"guest2_name"`
	Guest2Phone        *string `json:"guest2_phone"`
	Guest2CheckinDate  *string `json:"guest2_checkin_date"`
	Guest2CheckoutDate *string `json:"guest2_checkout_date"`
	CheckoutDate       *string `json:"checkout_date"`
	Notes              *string `json:"notes"`
	TotalGuests        int     `json:"total_guests"`
	Active             bool    `json:"active"`
	gDto.Metadata
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.RoomID = entry.RoomID
	r.RoomNumber = entry.RoomNumber
	r.RoomType = entry.RoomType
	r.CompanyName = entry.CompanyName
	r.Guest1Name = entry.Guest1Name
	r.Guest1Phone = entry.Guest1Phone
	r.Guest1CheckinDate = entry.Guest1CheckinDate.Format(time.DateOnly)
	r.Guest1CheckoutDate = formatDate(entry.Guest1CheckoutDate)
	r.Guest2Name = entry.Guest2Name
	r.Guest2Phone = entry.Guest2Phone
	r.Guest2CheckinDate = formatDate(entry.Guest2CheckinDate)
	r.Guest2CheckoutDate = formatDate(entry.Guest2CheckoutDate)
	r.CheckoutDate = formatDate(entry.CheckoutDate)
	r.Notes = entry.Notes
	r.TotalGuests = entry.GuestCount()
	r.Active = entry.IsOpen()
	r.Metadata.FromModel(entry.Metadata)
}

type GetEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

func (r *GetEntriesResponse) FromModels(entries []model.Entry) {
	r.Total = len(entries)

	r.Entries = make([]EntryResponse, len(entries))
	for i, entry := range entries {
		r.Entries[i].FromModel(entry)
	}
}

type StatsResponse struct {
	TotalBookings  int `json:"total_bookings"`
	TotalGuests    int `json:"total_guests"`
	CompletedStays int `json:"completed_stays"`
	CurrentGuests  int `json:"current_guests"`
}

func (s *StatsResponse) FromModel(stats model.Stats) {
	s.TotalBookings = stats.TotalBookings
	s.TotalGuests = stats.TotalGuests
	s.CompletedStays = stats.CompletedStays
	s.CurrentGuests = stats.CurrentGuests
}

type MonthResponse struct {
	Month       string          `json:"month"`
	Year        int             `json:"year"`
	TotalGuests int             `json:"total_guests"`
	Active      int             `json:"active"`
	Finished    int             `json:"finished"`
	Entries     []EntryResponse `json:"entries"`
}

func (m *MonthResponse) FromModel(group model.MonthGroup) {
	m.Month = group.Month.Format("2006-01")
	m.Year = group.Month.Year()
	m.TotalGuests = group.TotalGuests
	m.Active = group.Active
	m.Finished = group.Finished

	m.Entries = make([]EntryResponse, len(group.Entries))
	for i, entry := range group.Entries {
		m.Entries[i].FromModel(entry)
	}
}

type MonthlyResponse struct {
	Months []MonthResponse `json:"months"`
}

func (m *MonthlyResponse) FromModels(groups []model.MonthGroup) {
	m.Months = make([]MonthResponse, len(groups))
	for i, group := range groups {
		m.Months[i].FromModel(group)
	}
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := value.Format(time.DateOnly)

	return &formatted
}
