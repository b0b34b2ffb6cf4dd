package service

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"hostel/internal/domains/export/model"
	historyModel "hostel/internal/domains/history/model"
	roomModel "hostel/internal/domains/room/model"
	"hostel/shared/timezone"
)

const (
	dateLayout  = "02/01/2006"
	monthLayout = "2006-01"

	labelOngoing  = "Em curso"
	labelFinished = "Finalizada"
	labelActive   = "Ativa"

	maxSheetName  = 28
	trimSheetName = 25
)

var summaryColumns = []model.Column{
	{Header: "Quarto", Width: 8},
	{Header: "Tipo de Quarto", Width: 12},
	{Header: "Empresa", Width: 20},
	{Header: "Hóspede 1", Width: 25},
	{Header: "Telefone 1", Width: 15},
	{Header: "Check-in H1", Width: 12},
	{Header: "Hóspede 2", Width: 25},
	{Header: "Telefone 2", Width: 15},
	{Header: "Check-in H2", Width: 12},
	{Header: "Data Check-out", Width: 12},
	{Header: "Status", Width: 10},
	{Header: "Total Hóspedes", Width: 10},
}

var detailedColumns = []model.Column{
	{Header: "Quarto", Width: 8},
	{Header: "Tipo de Quarto", Width: 12},
	{Header: "Empresa", Width: 20},
	{Header: "Nº Hóspede", Width: 8},
	{Header: "Nome do Hóspede", Width: 25},
	{Header: "Telefone", Width: 15},
	{Header: "Data Check-in", Width: 12},
	{Header: "Data Check-out", Width: 12},
	{Header: "Status", Width: 10},
	{Header: "ID Reserva", Width: 15},
}

var annualColumns = []model.Column{
	{Header: "Indicador", Width: 30},
	{Header: "Valor", Width: 15},
}

var perMonthColumns = []model.Column{
	{Header: "Mês", Width: 15},
	{Header: "Ano", Width: 8},
	{Header: "Total de Reservas", Width: 15},
	{Header: "Total de Hóspedes", Width: 15},
	{Header: "Reservas Ativas", Width: 15},
	{Header: "Reservas Finalizadas", Width: 18},
	{Header: "Taxa de Finalização", Width: 15},
	{Header: "Empresas Diferentes", Width: 18},
	{Header: "Quartos Singles", Width: 15},
	{Header: "Quartos Duplos", Width: 15},
}

// byCheckinDesc returns a copy of entries ordered by first check-in, newest first.
func byCheckinDesc(entries []historyModel.Entry) []historyModel.Entry {
	sorted := slices.Clone(entries)

	slices.SortStableFunc(sorted, func(a, b historyModel.Entry) int {
		return b.Guest1CheckinDate.Compare(a.Guest1CheckinDate)
	})

	return sorted
}

func summarySheet(name string, entries []historyModel.Entry) model.Sheet {
	sheet := model.Sheet{Name: name, Columns: summaryColumns}

	for _, entry := range byCheckinDesc(entries) {
		sheet.Rows = append(sheet.Rows, []any{
			entry.RoomNumber,
			entry.RoomType,
			text(entry.CompanyName),
			entry.Guest1Name,
			text(entry.Guest1Phone),
			formatDate(entry.Guest1CheckinDate),
			text(entry.Guest2Name),
			text(entry.Guest2Phone),
			formatOptionalDate(entry.Guest2CheckinDate, ""),
			formatCheckout(entry.CheckoutDate),
			stayStatus(entry),
			entry.GuestCount(),
		})
	}

	return sheet
}

// detailedSheet writes one row per guest.
func detailedSheet(name string, entries []historyModel.Entry) model.Sheet {
	sheet := model.Sheet{Name: name, Columns: detailedColumns}

	for _, entry := range byCheckinDesc(entries) {
		checkout := formatCheckout(entry.CheckoutDate)

		sheet.Rows = append(sheet.Rows, []any{
			entry.RoomNumber,
			entry.RoomType,
			text(entry.CompanyName),
			1,
			entry.Guest1Name,
			text(entry.Guest1Phone),
			formatDate(entry.Guest1CheckinDate),
			checkout,
			stayStatus(entry),
			entry.ID,
		})

		if !entry.HasSecondGuest() {
			continue
		}

		sheet.Rows = append(sheet.Rows, []any{
			entry.RoomNumber,
			entry.RoomType,
			text(entry.CompanyName),
			2,
			*entry.Guest2Name,
			text(entry.Guest2Phone),
			formatOptionalDate(entry.Guest2CheckinDate, formatDate(entry.Guest1CheckinDate)),
			checkout,
			stayStatus(entry),
			entry.ID,
		})
	}

	return sheet
}

func annualSheet(groups []historyModel.MonthGroup) model.Sheet {
	var (
		entries     []historyModel.Entry
		totalGuests int
	)

	for _, group := range groups {
		entries = append(entries, group.Entries...)
		totalGuests += group.TotalGuests
	}

	counts := countEntries(entries)

	average := "0"
	if len(entries) > 0 {
		average = strconv.FormatFloat(float64(totalGuests)/float64(len(entries)), 'f', 2, 64)
	}

	return model.Sheet{
		Name:    "Resumo Anual",
		Columns: annualColumns,
		Rows: [][]any{
			{"Total de Reservas no Ano", len(entries)},
			{"Total de Hóspedes no Ano", totalGuests},
			{"Reservas Ativas", counts.active},
			{"Reservas Finalizadas", counts.finished},
			{"Taxa de Finalização Anual", counts.completionRate()},
			{"Empresas Únicas", counts.companies},
			{"Reservas em Quartos Singles", counts.singles},
			{"Reservas em Quartos Duplos", counts.doubles},
			{"Média de Hóspedes por Reserva", average},
		},
	}
}

func perMonthSheet(groups []historyModel.MonthGroup) model.Sheet {
	sheet := model.Sheet{Name: "Por Mês", Columns: perMonthColumns}

	for _, group := range groups {
		counts := countEntries(group.Entries)

		sheet.Rows = append(sheet.Rows, []any{
			group.Month.Format(monthLayout),
			group.Month.Year(),
			len(group.Entries),
			group.TotalGuests,
			counts.active,
			counts.finished,
			counts.completionRate(),
			counts.companies,
			counts.singles,
			counts.doubles,
		})
	}

	return sheet
}

type entryCounts struct {
	total     int
	active    int
	finished  int
	companies int
	singles   int
	doubles   int
}

func countEntries(entries []historyModel.Entry) entryCounts {
	counts := entryCounts{total: len(entries)}
	companies := map[string]struct{}{}

	for _, entry := range entries {
		if entry.IsOpen() {
			counts.active++
		} else {
			counts.finished++
		}

		if entry.CompanyName != nil && *entry.CompanyName != "" {
			companies[*entry.CompanyName] = struct{}{}
		}

		switch roomModel.Type(entry.RoomType) {
		case roomModel.TypeSingle:
			counts.singles++
		case roomModel.TypeDouble:
			counts.doubles++
		}
	}

	counts.companies = len(companies)

	return counts
}

func (c entryCounts) completionRate() string {
	if c.total == 0 {
		return "0%"
	}

	return fmt.Sprintf("%.1f%%", float64(c.finished)/float64(c.total)*100)
}

// monthSheetName keeps month labels inside the worksheet name limit.
func monthSheetName(label string) string {
	runes := []rune(label)
	if len(runes) > maxSheetName {
		return string(runes[:trimSheetName]) + "..."
	}

	return label
}

func stayStatus(entry historyModel.Entry) string {
	if entry.IsOpen() {
		return labelActive
	}

	return labelFinished
}

func text(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

// formatDate prints a calendar date column as stored, without a zone shift.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}

	return formatDate(*t)
}

// formatCheckout prints a checkout timestamp in the application timezone.
func formatCheckout(t *time.Time) string {
	if t == nil {
		return labelOngoing
	}

	return timezone.Format(*t, dateLayout)
}
