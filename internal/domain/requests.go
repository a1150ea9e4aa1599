package domain

// AccountIDsRequest é o corpo de POST /v1/accounts.
type AccountIDsRequest struct {
	AppID  string `json:"app_id"`
	Secret string `json:"secret"`
}

// ImportRequest é o corpo das rotas de importação. Sem s3_path, usa o caminho configurado.
// DateFrom e DateTo (YYYY-MM-DD) só valem para insights.
type ImportRequest struct {
	AppID    string `json:"app_id"`
	Secret   string `json:"secret"`
	S3Path   string `json:"s3_path"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

type RenameRequest struct {
	Name string `json:"name"`
}
