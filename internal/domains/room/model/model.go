package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"hostel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                = "id"
	FieldNumber            = "number"
	FieldType              = "type"
	FieldStatus            = "status"
	FieldCompany           = "company"
	FieldGuest1Name        = "guest1_name"
	FieldGuest1Phone       = "guest1_phone"
	FieldGuest1CheckinDate = "guest1_checkin_date"
	FieldGuest2Name        = "guest2_name"
	FieldGuest2Phone       = "guest2_phone"
	FieldGuest2CheckinDate = "guest2_checkin_date"
	FieldVersion           = "version"
)

// MaxGuests is the number of guest slots a room row carries.
const MaxGuests = 2

type Status string

const (
	StatusFree     Status = "Free"
	StatusOccupied Status = "Occupied"
	StatusDirty    Status = "Dirty"

	// rows written by older releases spell it this way
	legacyStatusOccupied = "Ocupied"
)

// ParseStatus accepts the canonical names and the legacy "Ocupied" spelling.
func ParseStatus(value string) (Status, bool) {
	switch value {
	case string(StatusFree):
		return StatusFree, true
	case string(StatusOccupied), legacyStatusOccupied:
		return StatusOccupied, true
	case string(StatusDirty):
		return StatusDirty, true
	default:
		return "", false
	}
}

func (s Status) IsValid() bool {
	return s == StatusFree || s == StatusOccupied || s == StatusDirty
}

func (s *Status) Scan(src any) error {
	var raw string

	switch value := src.(type) {
	case string:
		raw = value
	case []byte:
		raw = string(value)
	default:
		return fmt.Errorf("unsupported room status type %T", src)
	}

	status, ok := ParseStatus(raw)
	if !ok {
		return fmt.Errorf("unknown room status %q", raw)
	}

	*s = status

	return nil
}

func (s Status) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown room status %q", string(s))
	}

	return string(s), nil
}

type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
)

func (t Type) IsValid() bool {
	return t == TypeSingle || t == TypeDouble
}

// Capacity is how many guest slots the room type may use.
func (t Type) Capacity() int {
	if t == TypeDouble {
		return MaxGuests
	}

	return 1
}

// GuestSlot is one occupant. A slot with an empty name is vacant.
type GuestSlot struct {
	Name        string
	Phone       string
	CheckinDate time.Time
}

func (g GuestSlot) Empty() bool {
	return g.Name == ""
}

type Room struct {
	ID                string     `db:"id"`
	Number            string     `db:"number"`
	Type              Type       `db:"type"`
	Status            Status     `db:"status"`
	Company           *string    `db:"company"`
	Guest1Name        *string    `db:"guest1_name"`
	Guest1Phone       *string    `db:"guest1_phone"`
	Guest1CheckinDate *time.Time `db:"guest1_checkin_date"`
	Guest2Name        *string    `db:"guest2_name"`
	Guest2Phone       *string    `db:"guest2_phone"`
	Guest2CheckinDate *time.Time `db:"guest2_checkin_date"`
	Version           int        `db:"version"`
	model.Metadata
}

// Slots exposes the flat guest columns as an ordered pair.
func (r *Room) Slots() [MaxGuests]GuestSlot {
	return [MaxGuests]GuestSlot{
		toSlot(r.Guest1Name, r.Guest1Phone, r.Guest1CheckinDate),
		toSlot(r.Guest2Name, r.Guest2Phone, r.Guest2CheckinDate),
	}
}

// SetSlots writes the pair back onto the flat columns, vacant slots become NULL.
func (r *Room) SetSlots(slots [MaxGuests]GuestSlot) {
	r.Guest1Name, r.Guest1Phone, r.Guest1CheckinDate = fromSlot(slots[0])
	r.Guest2Name, r.Guest2Phone, r.Guest2CheckinDate = fromSlot(slots[1])
}

// Occupants counts the filled slots.
func (r *Room) Occupants() int {
	count := 0

	for _, slot := range r.Slots() {
		if !slot.Empty() {
			count++
		}
	}

	return count
}

func (r *Room) CompanyName() string {
	if r.Company == nil {
		return ""
	}

	return *r.Company
}

// Fields returns the mutable columns in the shape the repository update expects.
func (r *Room) Fields() map[string]any {
	return map[string]any{
		FieldNumber:            r.Number,
		FieldType:              r.Type,
		FieldStatus:            r.Status,
		FieldCompany:           r.Company,
		FieldGuest1Name:        r.Guest1Name,
		FieldGuest1Phone:       r.Guest1Phone,
		FieldGuest1CheckinDate: r.Guest1CheckinDate,
		FieldGuest2Name:        r.Guest2Name,
		FieldGuest2Phone:       r.Guest2Phone,
		FieldGuest2CheckinDate: r.Guest2CheckinDate,
	}
}

func toSlot(name, phone *string, checkin *time.Time) GuestSlot {
	if name == nil || *name == "" {
		return GuestSlot{}
	}

	slot := GuestSlot{Name: *name}

	if phone != nil {
		slot.Phone = *phone
	}

	if checkin != nil {
		slot.CheckinDate = *checkin
	}

	return slot
}

func fromSlot(slot GuestSlot) (name, phone *string, checkin *time.Time) {
	if slot.Empty() {
		return nil, nil, nil
	}

	name = &slot.Name

	if slot.Phone != "" {
		phone = &slot.Phone
	}

	if !slot.CheckinDate.IsZero() {
		checkin = &slot.CheckinDate
	}

	return name, phone, checkin
}

// Stats is the aggregate the registry reports for the front desk dashboard.
type Stats struct {
	Total    int
	Free     int
	Occupied int
	Dirty    int
}

// OccupancyRate is the rounded percentage of occupied rooms, zero for an empty registry.
func (s Stats) OccupancyRate() int {
	if s.Total == 0 {
		return 0
	}

	return int(float64(s.Occupied)/float64(s.Total)*100 + 0.5)
}

// StatusCount is one row of the GROUP BY status aggregate.
type StatusCount struct {
	Status Status `db:"status"`
	Count  int    `db:"count"`
}
