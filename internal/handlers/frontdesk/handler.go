package frontdesk

import (
	"net/http"

	"hostel/infras/otel"
	"hostel/internal/domains/frontdesk/model/dto"
	"hostel/internal/domains/frontdesk/service"
	roomDto "hostel/internal/domains/room/model/dto"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FrontDesk
	otel    otel.Otel
}

func New(service service.FrontDesk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers flat routes so they share the /rooms prefix with the room handler.
func (handler *Handler) Router(r chi.Router) {
	r.Post("/rooms/{id}/check-in", handler.CheckIn)
	r.Post("/rooms/{id}/check-in/second-guest", handler.CheckInSecondGuest)
	r.Post("/rooms/{id}/check-out", handler.CheckoutRoom)
	r.Post("/rooms/{id}/check-out/first-guest", handler.CheckoutFirstGuest)
	r.Post("/rooms/{id}/check-out/second-guest", handler.CheckoutSecondGuest)
	r.Post("/rooms/{id}/clean", handler.MarkClean)
	r.Patch("/rooms/{id}/status", handler.UpdateRoomStatus)
}

// CheckIn handles checking one or two guests into a free room.
// @Summary Check in guests
// @Description Occupies a Free room and opens its history entry.
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.CheckInRequest true "Check In Request"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Room after check-in"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.CheckIn(ctx, chi.URLParam(r, constant.RequestParamID), req)
	handler.respond(w, r, scope, "check in", room, err)
}

// CheckInSecondGuest adds a second guest to an occupied double room.
// @Summary Check in a second guest
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.SecondGuestRequest true "Second Guest Request"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Room after check-in"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/check-in/second-guest [post]
// @Security BearerAuth
func (handler *Handler) CheckInSecondGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckInSecondGuest")
	defer scope.End()

	req := dto.SecondGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.CheckInSecondGuest(ctx, chi.URLParam(r, constant.RequestParamID), req)
	handler.respond(w, r, scope, "check in second guest", room, err)
}

// CheckoutFirstGuest checks out guest 1 while guest 2 stays.
// @Summary Check out the first guest
// @Tags FrontDesk
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Room after checkout"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/check-out/first-guest [post]
// @Security BearerAuth
func (handler *Handler) CheckoutFirstGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutFirstGuest")
	defer scope.End()

	room, err := handler.service.CheckoutFirstGuest(ctx, chi.URLParam(r, constant.RequestParamID))
	handler.respond(w, r, scope, "check out first guest", room, err)
}

// CheckoutSecondGuest checks out guest 2. The room ends Dirty once nobody is left.
// @Summary Check out the second guest
// @Tags FrontDesk
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Room after checkout"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/check-out/second-guest [post]
// @Security BearerAuth
func (handler *Handler) CheckoutSecondGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutSecondGuest")
	defer scope.End()

	room, err := handler.service.CheckoutSecondGuest(ctx, chi.URLParam(r, constant.RequestParamID))
	handler.respond(w, r, scope, "check out second guest", room, err)
}

// CheckoutRoom checks out every guest and closes the history entry.
// @Summary Check out a room
// @Tags FrontDesk
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Room after checkout"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckoutRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutRoom")
	defer scope.End()

	room, err := handler.service.CheckoutRoom(ctx, chi.URLParam(r, constant.RequestParamID))
	handler.respond(w, r, scope, "check out room", room, err)
}

// MarkClean turns a Dirty room back to Free.
// @Summary Mark a room clean
// @Tags FrontDesk
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Room after cleaning"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/clean [post]
// @Security BearerAuth
func (handler *Handler) MarkClean(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkClean")
	defer scope.End()

	room, err := handler.service.MarkClean(ctx, chi.URLParam(r, constant.RequestParamID))
	handler.respond(w, r, scope, "mark room clean", room, err)
}

// UpdateRoomStatus forces a room into the given status.
// @Summary Override a room status
// @Description Forcing Free or Dirty on an occupied room clears its guests and closes the open entry.
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[roomDto.RoomResponse] "Room after the change"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.UpdateRoomStatus(ctx, chi.URLParam(r, constant.RequestParamID), req)
	handler.respond(w, r, scope, "update room status", room, err)
}

func (handler *Handler) respond(w http.ResponseWriter, r *http.Request, scope otel.Scope, action string, room roomDto.RoomResponse, err error) {
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", chi.URLParam(r, constant.RequestParamID)).Msg("failed to " + action)

		response.WithError(w, err)

		return
	}

	scope.AddEvent(action + " done by user " + shared.Actor(r.Context()))

	response.WithJSON(w, http.StatusOK, room)
}
