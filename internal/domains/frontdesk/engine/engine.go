// Package engine holds the front desk state machine for a single room.
//
// Every function takes the current room row and returns the row to persist
// together with the history effect the caller must apply in the same
// transaction. Nothing here touches storage, so the rules can be tested on
// plain values.
//
//	Free --CheckIn--> Occupied --CheckoutRoom--> Dirty --MarkClean--> Free
//
// Partial checkouts keep the room Occupied while a guest remains in either slot.
package engine

import (
	"strings"
	"time"

	"hostel/internal/domains/room/model"
	"hostel/shared/failure"
	"hostel/shared/phone"
)

var (
	ErrMissingGuestName = failure.BadRequestFromString("guest name is required")
	ErrMissingDate      = failure.BadRequestFromString("checkin date is required")
	ErrInvalidPhone     = failure.BadRequestFromString("phone must contain digits only, optionally prefixed by +")
	ErrInvalidStatus    = failure.BadRequestFromString("status must be one of Free, Occupied, Dirty")
	ErrRoomNotFree      = failure.Conflict("room is not free")
	ErrRoomNotOccupied  = failure.Conflict("room is not occupied")
	ErrRoomOccupied     = failure.Conflict("room is occupied")
	ErrSingleRoom       = failure.Conflict("room only takes one guest")
	ErrSlotFilled       = failure.Conflict("guest slot already filled")
	ErrSlotEmpty        = failure.Conflict("guest slot is empty")
	ErrNoFirstGuest     = failure.Conflict("room has no first guest")
)

// Effect is what happens to the room's open history entry.
type Effect int

const (
	EffectNone Effect = iota
	// EffectOpen closes any stale open entry and inserts a new one from the room slots.
	EffectOpen
	// EffectUpdateGuest2 writes the second slot onto the open entry.
	EffectUpdateGuest2
	// EffectGuestLeft stamps the checkout date of Result.Slot on the open entry.
	EffectGuestLeft
	// EffectClose sets the checkout date of the open entry.
	EffectClose
)

func (e Effect) String() string {
	switch e {
	case EffectOpen:
		return "open"
	case EffectUpdateGuest2:
		return "update_guest2"
	case EffectGuestLeft:
		return "guest_left"
	case EffectClose:
		return "close"
	default:
		return "none"
	}
}

const (
	SlotFirst  = 0
	SlotSecond = 1
)

type Guest struct {
	Name        string
	Phone       string
	CheckinDate time.Time
}

type CheckIn struct {
	Guest1  Guest
	Guest2  *Guest
	Company string
}

type Result struct {
	Room    model.Room
	Effect  Effect
	Slot    int
	Changed bool
}

func changed(room model.Room, effect Effect) Result {
	room.Version++

	return Result{Room: room, Effect: effect, Changed: true}
}

// guestSlot trims and validates a guest, filling the date with fallback when given.
func guestSlot(guest Guest, fallback time.Time) (model.GuestSlot, error) {
	name := strings.TrimSpace(guest.Name)
	if name == "" {
		return model.GuestSlot{}, ErrMissingGuestName
	}

	number := phone.Normalize(guest.Phone)
	if number != "" && !phone.Valid(number) {
		return model.GuestSlot{}, ErrInvalidPhone
	}

	date := guest.CheckinDate
	if date.IsZero() {
		date = fallback
	}

	if date.IsZero() {
		return model.GuestSlot{}, ErrMissingDate
	}

	return model.GuestSlot{Name: name, Phone: number, CheckinDate: date}, nil
}

func vacate(room *model.Room) {
	room.SetSlots([model.MaxGuests]model.GuestSlot{})
	room.Company = nil
}

// ApplyCheckIn occupies a Free room. Missing dates default to today.
func ApplyCheckIn(room model.Room, req CheckIn, today time.Time) (Result, error) {
	if room.Status != model.StatusFree {
		return Result{}, ErrRoomNotFree
	}

	var slots [model.MaxGuests]model.GuestSlot

	first, err := guestSlot(req.Guest1, today)
	if err != nil {
		return Result{}, err
	}

	slots[SlotFirst] = first

	if req.Guest2 != nil {
		if room.Type.Capacity() < model.MaxGuests {
			return Result{}, ErrSingleRoom
		}

		second, err := guestSlot(*req.Guest2, today)
		if err != nil {
			return Result{}, err
		}

		slots[SlotSecond] = second
	}

	room.Status = model.StatusOccupied
	room.SetSlots(slots)
	room.Company = nil

	if company := strings.TrimSpace(req.Company); company != "" {
		room.Company = &company
	}

	return changed(room, EffectOpen), nil
}

// ApplyCheckInSecondGuest fills slot two of an Occupied double room. The date is required.
func ApplyCheckInSecondGuest(room model.Room, guest Guest) (Result, error) {
	if room.Status != model.StatusOccupied {
		return Result{}, ErrNoFirstGuest
	}

	if room.Type.Capacity() < model.MaxGuests {
		return Result{}, ErrSingleRoom
	}

	slots := room.Slots()

	if !slots[SlotSecond].Empty() {
		return Result{}, ErrSlotFilled
	}

	if slots[SlotFirst].Empty() {
		return Result{}, ErrNoFirstGuest
	}

	second, err := guestSlot(guest, time.Time{})
	if err != nil {
		return Result{}, err
	}

	slots[SlotSecond] = second
	room.SetSlots(slots)

	return changed(room, EffectUpdateGuest2), nil
}

// ApplyCheckoutGuest empties one slot. The room turns Dirty once nobody is left.
func ApplyCheckoutGuest(room model.Room, slot int) (Result, error) {
	if room.Status != model.StatusOccupied {
		return Result{}, ErrRoomNotOccupied
	}

	if slot < SlotFirst || slot > SlotSecond {
		return Result{}, ErrSlotEmpty
	}

	slots := room.Slots()
	if slots[slot].Empty() {
		return Result{}, ErrSlotEmpty
	}

	slots[slot] = model.GuestSlot{}
	room.SetSlots(slots)

	if room.Occupants() == 0 {
		room.Status = model.StatusDirty
		vacate(&room)

		return changed(room, EffectClose), nil
	}

	result := changed(room, EffectGuestLeft)
	result.Slot = slot

	return result, nil
}

// ApplyCheckoutRoom empties every slot at once.
func ApplyCheckoutRoom(room model.Room) (Result, error) {
	if room.Status != model.StatusOccupied {
		return Result{}, ErrRoomNotOccupied
	}

	room.Status = model.StatusDirty
	vacate(&room)

	return changed(room, EffectClose), nil
}

// ApplyMarkClean turns Dirty into Free. A Free room is returned untouched.
func ApplyMarkClean(room model.Room) (Result, error) {
	switch room.Status {
	case model.StatusFree:
		return Result{Room: room}, nil
	case model.StatusDirty:
		room.Status = model.StatusFree
		vacate(&room)

		return changed(room, EffectNone), nil
	default:
		return Result{}, ErrRoomOccupied
	}
}

// ApplyStatus is the administrative override. Forcing Free or Dirty discards
// the guests and closes any open entry, even when the status does not change,
// so a stuck room can always be reset. Forcing Occupied keeps whatever is there.
func ApplyStatus(room model.Room, status model.Status) (Result, error) {
	if !status.IsValid() {
		return Result{}, ErrInvalidStatus
	}

	if status == model.StatusOccupied {
		if room.Status == status {
			return Result{Room: room}, nil
		}

		room.Status = status

		return changed(room, EffectNone), nil
	}

	room.Status = status
	vacate(&room)

	return changed(room, EffectClose), nil
}
