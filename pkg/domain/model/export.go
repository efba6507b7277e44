package model

import "time"

// ExportDocument is the bulk export/import wire format. Import fully
// replaces the stored agents and logs.
type ExportDocument struct {
	Agents     []*Agent           `json:"agents"`
	Logs       []*ExecutionResult `json:"logs"`
	ExportedAt time.Time          `json:"exportedAt"`
}
