package pipeline

import "strings"

// Role keyword groups and the tag each one earns. The checks are independent;
// a role may earn several tags.
var roleTagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"executive", []string{"ceo", "founder", "owner"}},
	{"management", []string{"manager", "director", "head"}},
	{"sales", []string{"sales", "business development"}},
	{"technology", []string{"tech", "developer", "engineer"}},
}

// TagInputs carries the assembled fields the tag synthesizer derives from.
type TagInputs struct {
	Category    string
	Industry    string
	Role        string
	HasLocation bool
	HasSocial   bool
}

// SynthesizeTags derives descriptive business tags. The base tag is always
// present; the category tag is skipped for the default "General" category.
// Duplicates are removed, first occurrence wins.
func SynthesizeTags(inputs TagInputs) []string {
	tags := []string{"business-contact"}

	if inputs.Category != "" {
		if tag := normalizeTag(inputs.Category); tag != "general" {
			tags = append(tags, tag)
		}
	}
	if inputs.Industry != "" {
		tags = append(tags, normalizeTag(inputs.Industry))
	}

	role := strings.ToLower(inputs.Role)
	for _, group := range roleTagKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(role, keyword) {
				tags = append(tags, group.tag)
				break
			}
		}
	}

	if inputs.HasLocation {
		tags = append(tags, "has-location")
	}
	if inputs.HasSocial {
		tags = append(tags, "social-media")
	}

	return dedupeTags(tags)
}

func normalizeTag(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), "-")
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
