package dto

type MonthlyRequest struct {
	Month   string `json:"month"   validate:"required,datetime=2006-01"`
	Archive bool   `json:"archive"`
}

type YearlyRequest struct {
	Year    int  `json:"year"    validate:"required,min=2000,max=9999"`
	Archive bool `json:"archive"`
}

type ArchiveResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
