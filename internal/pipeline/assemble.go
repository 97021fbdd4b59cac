package pipeline

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zoomka/contact-intel/api/internal/entity"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationResult lists advisory defects. It never blocks assembly; callers
// decide what to do with an invalid record.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Defects []string `json:"defects,omitempty"`
}

// Assemble runs the full pipeline over a raw scanned payload: grammar
// classification, field extraction, social and geo enrichment over the
// original text, tag merging and scoring. It always produces a record.
func Assemble(raw string) *entity.ContactRecord {
	return finish(Extract(Classify(raw), raw), raw)
}

// AssembleVCard runs the same enrichment over a payload the caller has
// already identified as card-format text.
func AssembleVCard(raw string) *entity.ContactRecord {
	return finish(ParseVCard(raw), raw)
}

func finish(record *entity.ContactRecord, raw string) *entity.ContactRecord {
	record.ID = uuid.New()
	record.ScannedAt = time.Now().UTC()
	record.RawData = raw

	// Structured payloads may already carry explicit handles; the raw-text
	// scan only fills platforms the extractor left unset.
	record.SocialMedia = mergeSocial(record.SocialMedia, ExtractSocial(raw))
	record.Location = ExtractLocation(raw)
	record.TargetMarkets = DetectMarkets(raw)

	record.Tags = dedupeTags(append(record.Tags, "enhanced", "global-business"))
	record.Score = Score(record)

	return record
}

func mergeSocial(primary, fallback *entity.SocialMediaSet) *entity.SocialMediaSet {
	if primary == nil {
		return fallback
	}
	if fallback == nil {
		return primary
	}
	merged := *primary
	if merged.LinkedIn == "" {
		merged.LinkedIn = fallback.LinkedIn
	}
	if merged.Twitter == "" {
		merged.Twitter = fallback.Twitter
	}
	if merged.Facebook == "" {
		merged.Facebook = fallback.Facebook
	}
	if merged.Instagram == "" {
		merged.Instagram = fallback.Instagram
	}
	if merged.WhatsApp == "" {
		merged.WhatsApp = fallback.WhatsApp
	}
	if merged.YouTube == "" {
		merged.YouTube = fallback.YouTube
	}
	if merged.WeChat == "" {
		merged.WeChat = fallback.WeChat
	}
	if merged.GitHub == "" {
		merged.GitHub = fallback.GitHub
	}
	return &merged
}

// DisplayName resolves a presentable name: the real name when present, a
// "{role} at {organization}" composite when only the organization is known,
// and a fixed fallback otherwise.
func DisplayName(record *entity.ContactRecord) string {
	if record.Name != "" && record.Name != NameScanned && record.Name != NameWebsite {
		return record.Name
	}
	if record.Company != "" {
		if record.Role != "" {
			return fmt.Sprintf("%s at %s", record.Role, record.Company)
		}
		return record.Company
	}
	return NameUnknown
}

// Validate flags missing or malformed fields. Advisory only.
func Validate(record *entity.ContactRecord) ValidationResult {
	var defects []string

	if strings.TrimSpace(record.Name) == "" {
		defects = append(defects, "name is required")
	}
	if record.Email == "" && record.Phone == "" && record.Website == "" {
		defects = append(defects, "at least one contact method (email, phone, or website) is required")
	}
	if record.Email != "" && !emailShape.MatchString(record.Email) {
		defects = append(defects, "invalid email format")
	}
	if record.Website != "" && !validWebsite(record.Website) {
		defects = append(defects, "invalid website URL")
	}

	return ValidationResult{IsValid: len(defects) == 0, Defects: defects}
}

func validWebsite(website string) bool {
	u, err := url.Parse(website)
	return err == nil && u.Scheme != "" && u.Host != ""
}
