package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hostel/infras/otel"
	"hostel/infras/s3"
	"hostel/internal/domains/export/model"
	historyModel "hostel/internal/domains/history/model"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const archiveDirectory = "exports"

var errNoHistory = failure.NotFound("no history for period")

// EntrySource is the slice of the history service the exports read from.
type EntrySource interface {
	Entries(ctx context.Context, from, to time.Time) ([]historyModel.Entry, error)
}

type Export interface {
	Monthly(ctx context.Context, month string) (model.Workbook, error)
	Yearly(ctx context.Context, year int) (model.Workbook, error)
	Statistics(ctx context.Context, year int) (model.Workbook, error)
	Archive(ctx context.Context, workbook model.Workbook) (string, error)
}

type serviceImpl struct {
	history EntrySource
	storage s3.S3
	otel    otel.Otel
}

func New(history EntrySource, storage s3.S3, otel otel.Otel) Export {
	return &serviceImpl{
		history: history,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Monthly(ctx context.Context, month string) (res model.Workbook, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".export.Monthly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, err := timezone.Parse(monthLayout, month)
	if err != nil {
		return res, failure.BadRequestFromString("month must be YYYY-MM") //nolint:wrapcheck
	}

	entries, err := s.entries(ctx, start, start.AddDate(0, 1, -1))
	if err != nil {
		return res, err
	}

	label := start.Format(monthLayout)

	return s.workbook(model.KindMonthly, fmt.Sprintf("historico_%s.xlsx", label), []model.Sheet{
		summarySheet("Resumo", entries),
		detailedSheet("Detalhado", entries),
	})
}

func (s *serviceImpl) Yearly(ctx context.Context, year int) (res model.Workbook, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".export.Yearly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entries, err := s.yearEntries(ctx, year)
	if err != nil {
		return res, err
	}

	label := strconv.Itoa(year)
	sheets := []model.Sheet{
		summarySheet("Resumo "+label, entries),
		detailedSheet("Detalhado "+label, entries),
	}

	for _, group := range historyModel.GroupByMonth(entries) {
		sheets = append(sheets, summarySheet(monthSheetName(group.Month.Format(monthLayout)), group.Entries))
	}

	return s.workbook(model.KindYearly, fmt.Sprintf("historico_completo_%d.xlsx", year), sheets)
}

func (s *serviceImpl) Statistics(ctx context.Context, year int) (res model.Workbook, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".export.Statistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entries, err := s.yearEntries(ctx, year)
	if err != nil {
		return res, err
	}

	groups := historyModel.GroupByMonth(entries)

	return s.workbook(model.KindStatistics, fmt.Sprintf("estatisticas_%d.xlsx", year), []model.Sheet{
		annualSheet(groups),
		perMonthSheet(groups),
	})
}

// Archive uploads a rendered workbook and returns its public URL.
func (s *serviceImpl) Archive(ctx context.Context, workbook model.Workbook) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".export.Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	directory := archiveDirectory + "/" + string(workbook.Kind)

	url, err = s.storage.UploadFileBytes(ctx, "", directory, workbook.FileName, constant.ContentTypeXLSX, workbook.Content)
	if err != nil {
		log.Error().Err(err).Str("file_name", workbook.FileName).Msg("failed to archive export")

		return "", fmt.Errorf("failed to archive export: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) yearEntries(ctx context.Context, year int) ([]historyModel.Entry, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, timezone.GetLocation())

	return s.entries(ctx, start, start.AddDate(1, 0, -1))
}

func (s *serviceImpl) entries(ctx context.Context, from, to time.Time) ([]historyModel.Entry, error) {
	entries, err := s.history.Entries(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		return nil, errNoHistory
	}

	return entries, nil
}

func (s *serviceImpl) workbook(kind model.Kind, fileName string, sheets []model.Sheet) (model.Workbook, error) {
	content, err := render(sheets)
	if err != nil {
		log.Error().Err(err).Str("file_name", fileName).Msg("failed to render export")

		return model.Workbook{}, err
	}

	return model.Workbook{Kind: kind, FileName: fileName, Content: content}, nil
}
