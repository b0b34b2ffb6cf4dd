package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"hostel/infras/otel/mocks"
	s3Mocks "hostel/infras/s3/mocks"
	exportMocks "hostel/internal/domains/export/mocks"
	"hostel/internal/domains/export/model"
	"hostel/internal/domains/export/service"
	historyModel "hostel/internal/domains/history/model"
	"hostel/shared/constant"
	"hostel/shared/failure"
)

func strPtr(s string) *string {
	return &s
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleEntries() []historyModel.Entry {
	checkout := date(2024, time.May, 9)
	guest2Checkin := date(2024, time.May, 4)

	return []historyModel.Entry{
		{
			ID:                "entry-1",
			RoomNumber:        "101",
			RoomType:          "single",
			Guest1Name:        "Ana",
			Guest1CheckinDate: date(2024, time.May, 2),
			CheckoutDate:      &checkout,
		},
		{
			ID:                "entry-2",
			RoomNumber:        "201",
			RoomType:          "double",
			CompanyName:       strPtr("Acme"),
			Guest1Name:        "Bruno",
			Guest1Phone:       strPtr("+351912345678"),
			Guest1CheckinDate: date(2024, time.May, 3),
			Guest2Name:        strPtr("Carla"),
			Guest2CheckinDate: &guest2Checkin,
		},
		{
			ID:                "entry-3",
			RoomNumber:        "102",
			RoomType:          "single",
			CompanyName:       strPtr("Acme"),
			Guest1Name:        "Duarte",
			Guest1CheckinDate: date(2024, time.June, 1),
		},
	}
}

func openWorkbook(t *testing.T, workbook model.Workbook) *excelize.File {
	t.Helper()

	file, err := excelize.OpenReader(bytes.NewReader(workbook.Content))
	require.NoError(t, err)

	t.Cleanup(func() { _ = file.Close() })

	return file
}

func TestExport_Monthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := exportMocks.NewMockEntrySource(ctrl)
	svc := service.New(history, s3Mocks.NewMockS3(ctrl), mocks.NewOtel())

	tests := []struct {
		name      string
		month     string
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name:  "writes summary and detail sheets",
			month: "2024-05",
			setupMock: func() {
				history.EXPECT().
					Entries(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, from, to time.Time) ([]historyModel.Entry, error) {
						assert.Equal(t, 1, from.Day())
						assert.Equal(t, time.May, from.Month())
						assert.Equal(t, 31, to.Day())

						return sampleEntries()[:2], nil
					})
			},
		},
		{
			name:      "rejects a malformed month",
			month:     "May 2024",
			setupMock: func() {},
			wantKind:  failure.KindValidation,
		},
		{
			name:  "no history for the month",
			month: "2024-07",
			setupMock: func() {
				history.EXPECT().Entries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:  "history read fails",
			month: "2024-05",
			setupMock: func() {
				history.EXPECT().Entries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantKind: failure.KindStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			workbook, err := svc.Monthly(context.Background(), tt.month)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "historico_2024-05.xlsx", workbook.FileName)
			assert.Equal(t, model.KindMonthly, workbook.Kind)

			file := openWorkbook(t, workbook)
			assert.Equal(t, []string{"Resumo", "Detalhado"}, file.GetSheetList())

			summary, err := file.GetRows("Resumo")
			require.NoError(t, err)
			require.Len(t, summary, 3)
			assert.Equal(t, "Quarto", summary[0][0])
			assert.Equal(t, "Hóspede 1", summary[0][3])

			// newest check-in first
			assert.Equal(t, []string{
				"201", "double", "Acme", "Bruno", "+351912345678", "03/05/2024",
				"Carla", "", "04/05/2024", "Em curso", "Ativa", "2",
			}, summary[1])
			assert.Equal(t, "Ana", summary[2][3])
			assert.Equal(t, "Finalizada", summary[2][10])

			detailed, err := file.GetRows("Detalhado")
			require.NoError(t, err)
			require.Len(t, detailed, 4, "one row per guest")
			assert.Equal(t, "Carla", detailed[2][4])
			assert.Equal(t, "2", detailed[2][3])
			assert.Equal(t, "entry-2", detailed[2][9])
		})
	}
}

func TestExport_Yearly(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := exportMocks.NewMockEntrySource(ctrl)
	svc := service.New(history, s3Mocks.NewMockS3(ctrl), mocks.NewOtel())

	history.EXPECT().
		Entries(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to time.Time) ([]historyModel.Entry, error) {
			assert.Equal(t, time.January, from.Month())
			assert.Equal(t, time.December, to.Month())
			assert.Equal(t, 31, to.Day())

			return sampleEntries(), nil
		})

	workbook, err := svc.Yearly(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "historico_completo_2024.xlsx", workbook.FileName)

	file := openWorkbook(t, workbook)
	assert.Equal(t, []string{"Resumo 2024", "Detalhado 2024", "2024-06", "2024-05"}, file.GetSheetList())

	june, err := file.GetRows("2024-06")
	require.NoError(t, err)
	require.Len(t, june, 2)
	assert.Equal(t, "Duarte", june[1][3])
}

func TestExport_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := exportMocks.NewMockEntrySource(ctrl)
	svc := service.New(history, s3Mocks.NewMockS3(ctrl), mocks.NewOtel())

	history.EXPECT().Entries(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleEntries(), nil)

	workbook, err := svc.Statistics(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "estatisticas_2024.xlsx", workbook.FileName)

	file := openWorkbook(t, workbook)
	assert.Equal(t, []string{"Resumo Anual", "Por Mês"}, file.GetSheetList())

	annual, err := file.GetRows("Resumo Anual")
	require.NoError(t, err)
	assert.Equal(t, []string{"Total de Reservas no Ano", "3"}, annual[1])
	assert.Equal(t, []string{"Total de Hóspedes no Ano", "4"}, annual[2])
	assert.Equal(t, []string{"Taxa de Finalização Anual", "33.3%"}, annual[5])
	assert.Equal(t, []string{"Empresas Únicas", "1"}, annual[6])
	assert.Equal(t, []string{"Média de Hóspedes por Reserva", "1.33"}, annual[9])

	perMonth, err := file.GetRows("Por Mês")
	require.NoError(t, err)
	require.Len(t, perMonth, 3)
	assert.Equal(t, []string{"2024-06", "2024", "1", "1", "1", "0", "0.0%", "1", "1", "0"}, perMonth[1])
	assert.Equal(t, []string{"2024-05", "2024", "2", "3", "1", "1", "50.0%", "1", "1", "1"}, perMonth[2])
}

func TestExport_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)
	svc := service.New(exportMocks.NewMockEntrySource(ctrl), storage, mocks.NewOtel())

	workbook := model.Workbook{Kind: model.KindYearly, FileName: "historico_completo_2024.xlsx", Content: []byte("xlsx")}

	tests := []struct {
		name      string
		setupMock func()
		wantURL   string
		wantErr   bool
	}{
		{
			name: "uploads under the export kind",
			setupMock: func() {
				storage.EXPECT().
					UploadFileBytes(gomock.Any(), "", "exports/yearly", workbook.FileName, constant.ContentTypeXLSX, workbook.Content).
					Return("https://files.example.com/exports/yearly/historico_completo_2024.xlsx", nil)
			},
			wantURL: "https://files.example.com/exports/yearly/historico_completo_2024.xlsx",
		},
		{
			name: "upload fails",
			setupMock: func() {
				storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("access denied"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			url, err := svc.Archive(context.Background(), workbook)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}
