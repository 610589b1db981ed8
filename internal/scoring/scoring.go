// Package scoring computes the deterministic applicant-fit score. It is a
// fixed arithmetic blend, not a model: identical inputs always produce the
// identical score.
package scoring

import (
	"math"
	"strings"

	"github.com/hirebyte/hr-assistant/internal/catalog"
)

const (
	// targetYears is the experience sweet spot the proximity term peaks at.
	targetYears = 3.0

	skillsWeight     = 0.6
	experienceWeight = 0.3
	// baseline keeps a zero-overlap, zero-experience candidate above zero.
	baseline = 0.1
)

// ParseSkills splits comma-separated free text into normalized skill tokens:
// trimmed, lowercased, empties dropped.
func ParseSkills(text string) []string {
	parts := strings.Split(text, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		s := strings.ToLower(strings.TrimSpace(part))
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}

// Score rates a candidate against a posting on a 0-100 scale from skill
// overlap and experience proximity. Postings with no skills score the
// overlap component as zero. Negative years degrade the experience
// component to zero instead of failing.
func Score(p *catalog.Posting, skillsText string, years int) int {
	jobSkills := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		jobSkills[strings.ToLower(s)] = struct{}{}
	}

	overlap := 0
	seen := make(map[string]struct{})
	for _, s := range ParseSkills(skillsText) {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := jobSkills[s]; ok {
			overlap++
		}
	}

	skillsMatch := 0.0
	if len(jobSkills) > 0 {
		skillsMatch = float64(overlap) / float64(len(jobSkills))
	}

	expScore := 0.0
	if years >= 0 {
		expScore = clamp(1-math.Abs(float64(years)-targetYears)/targetYears, 0, 1)
	}

	return int(math.Round(100 * (skillsWeight*skillsMatch + experienceWeight*expScore + baseline)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
