package model

const EntityName = "export"

type Kind string

const (
	KindMonthly    Kind = "monthly"
	KindYearly     Kind = "yearly"
	KindStatistics Kind = "statistics"
)

// Workbook is a rendered xlsx file ready to be streamed or archived.
type Workbook struct {
	Kind     Kind
	FileName string
	Content  []byte
}

type Column struct {
	Header string
	Width  float64
}

// Sheet is one worksheet before rendering. Every row has one cell per column.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]any
}
