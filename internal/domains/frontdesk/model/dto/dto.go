package dto

import (
	"strings"
	"time"

	"hostel/internal/domains/frontdesk/engine"
	"hostel/internal/domains/room/model"
	"hostel/shared/failure"
	"hostel/shared/timezone"
)

type GuestRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Phone       string `json:"phone"        validate:"omitempty,phone"`
	CheckinDate string `json:"checkin_date" validate:"omitempty,dateonly"`
}

func (g *GuestRequest) ToGuest() (engine.Guest, error) {
	guest := engine.Guest{Name: g.Name, Phone: g.Phone}

	if strings.TrimSpace(g.CheckinDate) == "" {
		return guest, nil
	}

	date, err := timezone.Parse(time.DateOnly, g.CheckinDate)
	if err != nil {
		return guest, failure.BadRequestFromString("checkin_date must be YYYY-MM-DD") //nolint:wrapcheck
	}

	guest.CheckinDate = date

	return guest, nil
}

type CheckInRequest struct {
	Guest1  GuestRequest  `json:"guest1"  validate:"required"`
	Guest2  *GuestRequest `json:"guest2"  validate:"omitempty"`
	Company string        `json:"company" validate:"omitempty,max=100"`
}

func (c *CheckInRequest) ToCheckIn() (engine.CheckIn, error) {
	guest1, err := c.Guest1.ToGuest()
	if err != nil {
		return engine.CheckIn{}, err
	}

	req := engine.CheckIn{Guest1: guest1, Company: c.Company}

	if c.Guest2 != nil {
		guest2, err := c.Guest2.ToGuest()
		if err != nil {
			return engine.CheckIn{}, err
		}

		req.Guest2 = &guest2
	}

	return req, nil
}

// SecondGuestRequest differs from GuestRequest only in requiring the check-in date.
type SecondGuestRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Phone       string `json:"phone"        validate:"omitempty,phone"`
	CheckinDate string `json:"checkin_date" validate:"required,dateonly"`
}

func (s *SecondGuestRequest) ToGuest() (engine.Guest, error) {
	guest := GuestRequest(*s)

	return guest.ToGuest()
}

type UpdateStatusRequest struct {
	Status model.Status `json:"status" validate:"required,enum"`
}
