package domain

import "time"

// ReportFilters delimita o período do relatório, inclusivo nas duas pontas
type ReportFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// Contains indica se a data (desconsiderando o horário) está dentro do período
func (f *ReportFilters) Contains(date time.Time) bool {
	if f == nil || f.StartDate == nil || f.EndDate == nil {
		return false
	}

	day := truncateDay(date)
	return !day.Before(truncateDay(*f.StartDate)) && !day.After(truncateDay(*f.EndDate))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
