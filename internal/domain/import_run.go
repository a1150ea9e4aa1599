package domain

import "time"

type ImportKind string

const (
	ImportKindDetails     ImportKind = "details"
	ImportKindPerformance ImportKind = "performance"
)

// ImportRun registra uma exportação concluída para o S3.
type ImportRun struct {
	ID              string       `json:"id"`
	Kind            ImportKind   `json:"kind"`
	ResourceType    ResourceType `json:"resource_type"`
	AdvertiserCount int          `json:"advertiser_count"`
	RecordCount     int          `json:"record_count"`
	Paths           []string     `json:"paths"`
	DateFrom        *time.Time   `json:"date_from,omitempty"`
	DateTo          *time.Time   `json:"date_to,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ImportResult é o retorno das operações de importação.
type ImportResult struct {
	Paths []string `json:"paths"`
	Ok    bool     `json:"ok"`
}

// DateRange é o intervalo de datas usado nos relatórios de performance.
type DateRange struct {
	From time.Time
	To   time.Time
}
