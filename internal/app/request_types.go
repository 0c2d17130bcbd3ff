package app

import "technician-portal/internal/core"

// ImportRequest is the input for one bulk upload. The uploader is identified
// by exactly one of UploaderAuthUID (identity-provider subject, preferred) or
// UploaderEmail (operator tooling). Identity fields found in row cells are
// never trusted.
type ImportRequest struct {
	UploaderAuthUID string
	UploaderEmail   string
	Rows            []core.Row
}
