package dto

import (
	"github.com/zoomka/contact-intel/api/internal/entity"
	"github.com/zoomka/contact-intel/api/internal/pipeline"
)

// ScanRequest carries the raw text payload decoded from a scanned code.
type ScanRequest struct {
	RawData string `json:"raw_data"`
}

// ImportVCardRequest carries a card-format payload for import.
type ImportVCardRequest struct {
	VCard string `json:"vcard"`
}

// ContactListFilter contains query parameters for contact listing endpoints.
// Q filters by case-insensitive substring across name, company, role and
// category; Category filters exactly.
type ContactListFilter struct {
	Category string
	Q        string
	Limit    int
	Offset   int
}

// ScanResponse returns the assembled record together with derived metadata.
type ScanResponse struct {
	Contact     *entity.ContactRecord     `json:"contact"`
	DisplayName string                    `json:"display_name"`
	Format      string                    `json:"format"`
	Validation  pipeline.ValidationResult `json:"validation"`
}
