package domain

import "time"

// IngestReport summarizes one ingestion run. It is returned to the CLI and,
// when a broker is configured, published as an event after the run commits.
type IngestReport struct {
	Category    string    `json:"category"`
	Files       int       `json:"files"`
	RowsRead    int       `json:"rows_read"`
	RowsSkipped int       `json:"rows_skipped"`
	RowsSaved   int       `json:"rows_saved"`
	Batches     int       `json:"batches"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}
