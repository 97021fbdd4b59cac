package service

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/zoomka/contact-intel/api/internal/entity"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "KE"

// ContactCleaner normalizes contact channels before persistence. Cleaning is
// advisory: fields that fail normalization are kept verbatim so the record
// still round-trips, only the derived fields stay empty.
type ContactCleaner struct {
	DefaultRegion string
}

// NewContactCleaner builds a cleaner with the given default phone region.
func NewContactCleaner(defaultRegion string) *ContactCleaner {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ContactCleaner{DefaultRegion: region}
}

// Clean normalizes the record in place: lower-cases a well-formed email,
// derives an E.164 phone alongside the verbatim one, and drops an all-empty
// social set so absence is stored as absence.
func (c *ContactCleaner) Clean(record *entity.ContactRecord) {
	record.Email = c.cleanEmail(record.Email)
	record.PhoneE164 = normalizePhone(record.Phone, c.DefaultRegion)
	if record.SocialMedia != nil && record.SocialMedia.Empty() {
		record.SocialMedia = nil
	}
}

// cleanEmail returns the lower-cased email when it is well-formed and its
// domain survives IDNA conversion; otherwise the trimmed original.
func (c *ContactCleaner) cleanEmail(raw string) string {
	trimmed := strings.TrimSpace(raw)
	email := strings.ToLower(trimmed)
	if !emailPattern.MatchString(email) {
		return trimmed
	}
	parts := strings.SplitN(email, "@", 2)
	if !isDomainValid(parts[1]) {
		return trimmed
	}
	if ascii, err := idnaProfile.ToASCII(parts[1]); err != nil || ascii == "" {
		return trimmed
	}
	return email
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
