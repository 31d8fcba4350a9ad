package analysis

import "math"

// DeriveScores combines the normalized requirement assessments with the JD
// quality gate into the final score set and recruiter-style summary. Weak-JD
// caps are applied after the base formulas, never before.
func DeriveScores(result *Result, quality JDQuality) (Scores, string) {
	matched := len(result.Strengths)
	missing := len(result.Weaknesses)
	total := matched + missing
	if total == 0 {
		total = 1
	}

	overall := int(math.Round(float64(matched) / float64(total) * 100))
	skillsMatch := min(100, overall+5)
	atsCompatibility := max(0, overall-5)

	if quality.IsWeak {
		overall = min(overall, 65)
		skillsMatch = min(skillsMatch, 70)
		atsCompatibility = min(atsCompatibility, 60)
	}

	scores := Scores{
		Overall:             overall,
		SkillsMatch:         skillsMatch,
		AtsCompatibility:    atsCompatibility,
		MatchedRequirements: matched,
		MissingRequirements: missing,
		TotalRequirements:   total,
		JDQuality:           quality,
	}

	return scores, rejectionSummary(overall, matched, missing, quality)
}

// rejectionSummary picks exactly one summary line. Precedence is fixed: weak
// JD wins over everything, then strong overall, then zero matches, then
// missing-heavy, then the partial fallback.
func rejectionSummary(overall, matched, missing int, quality JDQuality) string {
	switch {
	case quality.IsWeak:
		return "Evaluation limited due to vague job requirements."
	case overall >= 75:
		return "Candidate aligns well with most role requirements."
	case matched == 0:
		return "No meaningful alignment with required skills."
	case missing > matched:
		return "Several critical requirements are missing."
	default:
		return "Partial alignment; improvements required."
	}
}
