package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/zoomka/contact-intel/api/internal/entity"
)

// Placeholder values used when a grammar cannot supply a real field.
const (
	NameUnknown = "Unknown Contact"
	NameScanned = "Scanned Contact"
	NameWebsite = "Website Contact"

	CategoryGeneral = "General"
	CategoryScanned = "Scanned"
	CategoryWebsite = "Website"
	CategoryVCard   = "vCard"

	companyFromWebsite = "From Website"
)

// Accepted key aliases for structured payloads, in lookup priority order.
var (
	nameKeys     = []string{"name", "fullName"}
	roleKeys     = []string{"position", "title", "jobTitle"}
	companyKeys  = []string{"company", "organization", "business"}
	emailKeys    = []string{"email", "mail"}
	phoneKeys    = []string{"phone", "tel", "mobile"}
	websiteKeys  = []string{"website", "url", "web"}
	categoryKeys = []string{"category", "industry"}
	imageKeys    = []string{"image", "photo", "avatar", "profilePicture"}
	notesKeys    = []string{"notes", "description", "bio"}
	socialKeys   = []string{"socialMedia", "socials"}
)

// Extract runs the field extractor for the given grammar. The result carries
// display fields, channels, category, notes and grammar-specific tags; the
// assembler fills in identity, enrichment and timestamps.
func Extract(format Format, raw string) *entity.ContactRecord {
	switch format {
	case FormatStructured:
		return extractStructured(raw)
	case FormatDelimited:
		return extractDelimited(raw)
	case FormatHyperlink:
		return extractHyperlink(raw)
	default:
		return extractFreeText(raw)
	}
}

func extractStructured(raw string) *entity.ContactRecord {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		// Braces without valid key/value content degrade to free text.
		return extractFreeText(raw)
	}

	social := resolveSocialFields(fields)

	record := &entity.ContactRecord{
		Name:        firstString(fields, nameKeys...),
		Role:        firstString(fields, roleKeys...),
		Company:     firstString(fields, companyKeys...),
		Email:       firstString(fields, emailKeys...),
		Phone:       firstString(fields, phoneKeys...),
		Website:     firstString(fields, websiteKeys...),
		Category:    firstString(fields, categoryKeys...),
		Image:       firstString(fields, imageKeys...),
		Notes:       firstString(fields, notesKeys...),
		SocialMedia: social,
		RawData:     raw,
	}
	if record.Name == "" {
		record.Name = NameUnknown
	}
	if record.Category == "" {
		record.Category = CategoryGeneral
	}

	record.Tags = SynthesizeTags(TagInputs{
		Category:    record.Category,
		Industry:    firstString(fields, "industry"),
		Role:        record.Role,
		HasLocation: fields["location"] != nil,
		HasSocial:   !social.Empty(),
	})
	return record
}

// resolveSocialFields prefers a nested social object under one of the accepted
// alias keys; otherwise it scans the payload's own top-level platform keys.
func resolveSocialFields(fields map[string]any) *entity.SocialMediaSet {
	for _, key := range socialKeys {
		if nested, ok := fields[key].(map[string]any); ok {
			return SocialFromFields(nested)
		}
	}
	return SocialFromFields(fields)
}

func extractDelimited(raw string) *entity.ContactRecord {
	parts := strings.Split(raw, "|")
	record := &entity.ContactRecord{
		Name:     slot(parts, 0),
		Role:     slot(parts, 1),
		Company:  slot(parts, 2),
		Email:    slot(parts, 3),
		Phone:    slot(parts, 4),
		Website:  slot(parts, 5),
		Category: slot(parts, 6),
		RawData:  raw,
		Tags:     []string{"qr-scanned", "pipe-format"},
	}
	if record.Name == "" {
		record.Name = NameUnknown
	}
	if record.Category == "" {
		record.Category = CategoryScanned
	}
	return record
}

func extractHyperlink(raw string) *entity.ContactRecord {
	return &entity.ContactRecord{
		Name:     NameWebsite,
		Company:  companyFromWebsite,
		Website:  raw,
		Category: CategoryWebsite,
		RawData:  raw,
		Tags:     []string{"qr-scanned", "website"},
	}
}

func extractFreeText(raw string) *entity.ContactRecord {
	return &entity.ContactRecord{
		Name:     NameScanned,
		Category: CategoryGeneral,
		Notes:    raw,
		RawData:  raw,
		Tags:     []string{"qr-scanned", "text"},
	}
}

// firstString resolves a field against an ordered alias list; the first
// present, non-empty string wins.
func firstString(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func slot(parts []string, index int) string {
	if index >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[index])
}
