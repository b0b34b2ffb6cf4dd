package export

import (
	"context"
	"net/http"

	"hostel/infras/otel"
	"hostel/internal/domains/export/model"
	"hostel/internal/domains/export/model/dto"
	"hostel/internal/domains/export/service"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/validator"
	"hostel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryMonth   = "month"
	queryYear    = "year"
	queryArchive = "archive"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/exports", func(r chi.Router) {
		r.Get("/monthly", handler.Monthly)
		r.Get("/yearly", handler.Yearly)
		r.Get("/statistics", handler.Statistics)
	})
}

// Monthly exports one month of history as an Excel workbook.
// @Summary Export a month of history
// @Description Streams the workbook, or uploads it and returns its URL when archive is true.
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Param archive query boolean false "Upload to object storage"
// @Success 200 {file} file "Workbook"
// @Success 201 {object} response.Data[dto.ArchiveResponse] "Archived workbook"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/exports/monthly [get]
// @Security BearerAuth
func (handler *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportMonthly")
	defer scope.End()

	req := dto.MonthlyRequest{
		Month:   r.URL.Query().Get(queryMonth),
		Archive: archiveRequested(r),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	workbook, err := handler.service.Monthly(ctx, req.Month)
	handler.deliver(ctx, w, scope, workbook, req.Archive, err)
}

// Yearly exports a full year of history with one sheet per month.
// @Summary Export a year of history
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param year query integer true "Year"
// @Param archive query boolean false "Upload to object storage"
// @Success 200 {file} file "Workbook"
// @Success 201 {object} response.Data[dto.ArchiveResponse] "Archived workbook"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/exports/yearly [get]
// @Security BearerAuth
func (handler *Handler) Yearly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportYearly")
	defer scope.End()

	req, err := yearlyRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	workbook, err := handler.service.Yearly(ctx, req.Year)
	handler.deliver(ctx, w, scope, workbook, req.Archive, err)
}

// Statistics exports the yearly indicators and the per month breakdown.
// @Summary Export yearly statistics
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param year query integer true "Year"
// @Param archive query boolean false "Upload to object storage"
// @Success 200 {file} file "Workbook"
// @Success 201 {object} response.Data[dto.ArchiveResponse] "Archived workbook"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/exports/statistics [get]
// @Security BearerAuth
func (handler *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportStatistics")
	defer scope.End()

	req, err := yearlyRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	workbook, err := handler.service.Statistics(ctx, req.Year)
	handler.deliver(ctx, w, scope, workbook, req.Archive, err)
}

func (handler *Handler) deliver(ctx context.Context, w http.ResponseWriter, scope otel.Scope, workbook model.Workbook, archive bool, err error) {
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build workbook")

		response.WithError(w, err)

		return
	}

	if !archive {
		response.WithFile(w, workbook.FileName, constant.ContentTypeXLSX, workbook.Content)

		return
	}

	url, err := handler.service.Archive(ctx, workbook)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file", workbook.FileName).Msg("failed to archive workbook")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workbook " + workbook.FileName + " archived by user " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusCreated, dto.ArchiveResponse{FileName: workbook.FileName, URL: url})
}

func yearlyRequest(r *http.Request) (dto.YearlyRequest, error) {
	req := dto.YearlyRequest{Archive: archiveRequested(r)}

	year, err := shared.ConvertStringToInt(r.URL.Query().Get(queryYear))
	if err != nil {
		return req, failure.BadRequestFromString("year must be a number") //nolint:wrapcheck
	}

	req.Year = year

	if err := validator.ValidateStruct(&req); err != nil {
		return req, err //nolint:wrapcheck
	}

	return req, nil
}

func archiveRequested(r *http.Request) bool {
	archive := shared.ConvertStringToBool(r.URL.Query().Get(queryArchive))

	return archive != nil && *archive
}
