package pipeline

import "github.com/zoomka/contact-intel/api/internal/entity"

const maxScore = 100

// Score computes a completeness score in [0, 100]. A real name is worth 20,
// each contact channel 20, role and organization 10 each. The weights sum to
// exactly 100; the clamp is a safety net.
func Score(record *entity.ContactRecord) int {
	score := 0

	if record.Name != "" && record.Name != NameScanned {
		score += 20
	}
	if record.Email != "" {
		score += 20
	}
	if record.Phone != "" {
		score += 20
	}
	if record.Website != "" {
		score += 20
	}
	if record.Role != "" {
		score += 10
	}
	if record.Company != "" {
		score += 10
	}

	if score > maxScore {
		return maxScore
	}
	return score
}
