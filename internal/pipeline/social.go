package pipeline

import (
	"regexp"

	"github.com/zoomka/contact-intel/api/internal/entity"
)

// Canonical URL shapes per platform. WhatsApp accepts a wa.me short link with
// a numeric segment or the bare product host; WeChat is handled separately
// because its value is an id, not a URL.
var (
	linkedinPattern  = regexp.MustCompile(`(https?://)?(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+`)
	twitterPattern   = regexp.MustCompile(`(https?://)?(www\.)?(twitter\.com|x\.com)/[a-zA-Z0-9_]+`)
	facebookPattern  = regexp.MustCompile(`(https?://)?(www\.)?facebook\.com/[a-zA-Z0-9.]+`)
	instagramPattern = regexp.MustCompile(`(https?://)?(www\.)?instagram\.com/[a-zA-Z0-9_.]+`)
	whatsappPattern  = regexp.MustCompile(`(https?://)?(wa\.me/[0-9]+|whatsapp\.com)`)
	youtubePattern   = regexp.MustCompile(`(https?://)?(www\.)?(youtube\.com|youtu\.be)/[a-zA-Z0-9_-]+`)
	githubPattern    = regexp.MustCompile(`(https?://)?(www\.)?github\.com/[a-zA-Z0-9-]+`)

	wechatNamePattern = regexp.MustCompile(`(?i)(wechat|weixin)`)
	wechatIDPattern   = regexp.MustCompile(`(?i)(?:wechat|weixin)[:\s]*([a-zA-Z0-9_-]+)`)
)

// ExtractSocial pattern-matches known platform shapes across the whole raw
// payload, regardless of which grammar the payload used. A WeChat name mention
// without an extractable id does not count as a detected handle. Returns nil
// when no platform matched.
func ExtractSocial(raw string) *entity.SocialMediaSet {
	social := &entity.SocialMediaSet{
		LinkedIn:  linkedinPattern.FindString(raw),
		Twitter:   twitterPattern.FindString(raw),
		Facebook:  facebookPattern.FindString(raw),
		Instagram: instagramPattern.FindString(raw),
		WhatsApp:  whatsappPattern.FindString(raw),
		YouTube:   youtubePattern.FindString(raw),
		GitHub:    githubPattern.FindString(raw),
	}

	if wechatNamePattern.MatchString(raw) {
		if m := wechatIDPattern.FindStringSubmatch(raw); m != nil {
			social.WeChat = m[1]
		}
	}

	if social.Empty() {
		return nil
	}
	return social
}

// SocialFromFields reads platform handles from a decoded key/value object,
// copying only string-typed values. The "x" key is accepted as an alias for
// the microblogging platform. Returns nil when nothing usable was found.
func SocialFromFields(fields map[string]any) *entity.SocialMediaSet {
	social := &entity.SocialMediaSet{
		LinkedIn:  stringField(fields, "linkedin"),
		Twitter:   stringField(fields, "twitter"),
		Facebook:  stringField(fields, "facebook"),
		Instagram: stringField(fields, "instagram"),
		WhatsApp:  stringField(fields, "whatsapp"),
		YouTube:   stringField(fields, "youtube"),
		WeChat:    stringField(fields, "wechat"),
		GitHub:    stringField(fields, "github"),
	}
	if social.Twitter == "" {
		social.Twitter = stringField(fields, "x")
	}

	if social.Empty() {
		return nil
	}
	return social
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}
