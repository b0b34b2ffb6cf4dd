package dto

import (
	"time"

	"hostel/internal/domains/room/model"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"

	"github.com/google/uuid"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type CreateRoomRequest struct {
	Number string       `json:"number" validate:"required,max=10,numeric"`
	Type   model.Type   `json:"type"   validate:"required,enum"`
	Status model.Status `json:"status" validate:"omitempty,enum"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusFree
	}

	now := timezone.Now()

	return model.Room{
		ID:     uuid.NewString(),
		Number: c.Number,
		Type:   c.Type,
		Status: status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest is a partial update, nil fields are left as they are.
type UpdateRoomRequest struct {
	Number  *string     `db:"number"  json:"number"  validate:"omitempty,max=10,numeric"`
	Type    *model.Type `db:"type"    json:"type"    validate:"omitempty,enum"`
	Company *string     `db:"company" json:"company" validate:"omitempty,max=100"`
}

type ListRoomsRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=Free Occupied Dirty"`
	Sort   string `json:"sort"   validate:"omitempty,oneof=asc desc"`
}

type RoomResponse struct {
	ID                string  `json:"id"`
	Number            string  `json:"number"`
	Type              string  `json:"type"`
	Status            string  `json:"status"`
	Company           *string `json:"company"`
	Guest1Name        *string `json:"guest1_name"`
	Guest1Phone       *string `json:"guest1_phone"`
	Guest1CheckinDate *string `json:"guest1_checkin_date"`
	Guest2Name        *string `json:"guest2_name"`
	Guest2Phone       *string `json:"guest2_phone"`
	Guest2CheckinDate *string `json:"guest2_checkin_date"`
	Occupants         int     `json:"occupants"`
	Version           int     `json:"version"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Number = room.Number
	r.Type = string(room.Type)
	r.Status = string(room.Status)
	r.Company = room.Company
	r.Guest1Name = room.Guest1Name
	r.Guest1Phone = room.Guest1Phone
	r.Guest1CheckinDate = formatDate(room.Guest1CheckinDate)
	r.Guest2Name = room.Guest2Name
	r.Guest2Phone = room.Guest2Phone
	r.Guest2CheckinDate = formatDate(room.Guest2CheckinDate)
	r.Occupants = room.Occupants()
	r.Version = room.Version
	r.Metadata.FromModel(room.Metadata)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Total = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type StatsResponse struct {
	Total         int `json:"total"`
	Free          int `json:"free"`
	Occupied      int `json:"occupied"`
	Dirty         int `json:"dirty"`
	OccupancyRate int `json:"occupancy_rate"`
}

func (s *StatsResponse) FromModel(stats model.Stats) {
	s.Total = stats.Total
	s.Free = stats.Free
	s.Occupied = stats.Occupied
	s.Dirty = stats.Dirty
	s.OccupancyRate = stats.OccupancyRate()
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := value.Format(time.DateOnly)

	return &formatted
}
