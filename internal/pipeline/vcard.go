package pipeline

import (
	"strings"

	"github.com/zoomka/contact-intel/api/internal/entity"
)

// Card-format sentinel lines. The line order below is fixed; consumers rely
// on it being byte-stable.
const (
	vcardBegin   = "BEGIN:VCARD"
	vcardVersion = "VERSION:3.0"
	vcardEnd     = "END:VCARD"
)

// ExportVCard serializes a record to the line-oriented card format. FN is
// always present; optional fields are emitted only when non-empty.
func ExportVCard(record *entity.ContactRecord) string {
	lines := []string{vcardBegin, vcardVersion, "FN:" + record.Name}

	if record.Role != "" {
		lines = append(lines, "TITLE:"+record.Role)
	}
	if record.Company != "" {
		lines = append(lines, "ORG:"+record.Company)
	}
	if record.Email != "" {
		lines = append(lines, "EMAIL:"+record.Email)
	}
	if record.Phone != "" {
		lines = append(lines, "TEL:"+record.Phone)
	}
	if record.Website != "" {
		lines = append(lines, "URL:"+record.Website)
	}
	if record.Notes != "" {
		lines = append(lines, "NOTE:"+record.Notes)
	}

	lines = append(lines, vcardEnd)
	return strings.Join(lines, "\n")
}

// ParseVCard reads a card-format payload back into a record. Unknown lines
// are ignored; repeated NOTE lines accumulate, separated by a single space.
func ParseVCard(raw string) *entity.ContactRecord {
	record := &entity.ContactRecord{
		Category: CategoryVCard,
		RawData:  raw,
		Tags:     []string{"qr-scanned", "vcard"},
	}

	var notes []string
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "FN:"):
			record.Name = strings.TrimSpace(line[len("FN:"):])
		case strings.HasPrefix(line, "ORG:"):
			record.Company = strings.TrimSpace(line[len("ORG:"):])
		case strings.HasPrefix(line, "TITLE:"):
			record.Role = strings.TrimSpace(line[len("TITLE:"):])
		case strings.HasPrefix(line, "EMAIL:"):
			record.Email = strings.TrimSpace(line[len("EMAIL:"):])
		case strings.HasPrefix(line, "TEL:"):
			record.Phone = strings.TrimSpace(line[len("TEL:"):])
		case strings.HasPrefix(line, "URL:"):
			record.Website = strings.TrimSpace(line[len("URL:"):])
		case strings.HasPrefix(line, "NOTE:"):
			notes = append(notes, strings.TrimSpace(line[len("NOTE:"):]))
		}
	}
	record.Notes = strings.Join(notes, " ")

	return record
}
