package history

import (
	"net/http"

	"hostel/infras/otel"
	"hostel/internal/domains/history/model/dto"
	"hostel/internal/domains/history/service"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/validator"
	"hostel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.History
	otel    otel.Otel
}

func New(service service.History, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/", handler.Query)
		r.Get("/stats", handler.Stats)
		r.Get("/monthly", handler.Monthly)
		r.Patch("/{id}", handler.UpdateEntry)
	})
}

// Query lists history entries, newest check-in first.
// @Summary Query the history ledger
// @Tags History
// @Produce json
// @Param room_id query string false "Room ID"
// @Param room_number query string false "Room number"
// @Param start_date query string false "Checked in on or after (YYYY-MM-DD)"
// @Param end_date query string false "Checked in on or before (YYYY-MM-DD)"
// @Param guest_name query string false "Either guest name contains"
// @Param company query string false "Company contains"
// @Param limit query integer false "Maximum entries"
// @Success 200 {object} response.Data[dto.GetEntriesResponse] "History entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history [get]
// @Security BearerAuth
func (handler *Handler) Query(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QueryHistory")
	defer scope.End()

	query := r.URL.Query()

	req := dto.QueryRequest{
		RoomID:     query.Get("room_id"),
		RoomNumber: query.Get("room_number"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
		GuestName:  query.Get("guest_name"),
		Company:    query.Get("company"),
	}

	if limit := query.Get(constant.RequestParamLimit); limit != "" {
		value, err := shared.ConvertStringToInt(limit)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.InvalidLimitParam)

			return
		}

		req.Limit = value
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	entries, err := handler.service.Query(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to query history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, entries)
}

// Stats aggregates the ledger over a check-in date range.
// @Summary History statistics
// @Tags History
// @Produce json
// @Param start_date query string false "Checked in on or after (YYYY-MM-DD)"
// @Param end_date query string false "Checked in on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.StatsResponse] "Statistics"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history/stats [get]
// @Security BearerAuth
func (handler *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HistoryStats")
	defer scope.End()

	req, err := rangeRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	stats, err := handler.service.Stats(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get history stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// Monthly groups entries by check-in month, newest month first.
// @Summary History grouped by month
// @Tags History
// @Produce json
// @Param start_date query string false "Checked in on or after (YYYY-MM-DD)"
// @Param end_date query string false "Checked in on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.MonthlyResponse] "Monthly groups"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history/monthly [get]
// @Security BearerAuth
func (handler *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HistoryMonthly")
	defer scope.End()

	req, err := rangeRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	months, err := handler.service.Monthly(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to group history by month")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, months)
}

// UpdateEntry edits the notes or company of a history entry.
// @Summary Update a history entry
// @Tags History
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body dto.UpdateEntryRequest true "Update Entry Request"
// @Success 200 {object} response.Data[dto.EntryResponse] "Updated entry"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEntry")
	defer scope.End()

	req := dto.UpdateEntryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	entry, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update history entry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("History entry updated by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusOK, entry)
}

func rangeRequest(r *http.Request) (dto.RangeRequest, error) {
	req := dto.RangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, err //nolint:wrapcheck
	}

	return req, nil
}
