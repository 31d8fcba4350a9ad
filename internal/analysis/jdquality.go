package analysis

import "strings"

// jdKeywords is the fixed vocabulary used to judge whether a job description
// actually describes requirements.
var jdKeywords = []string{
	"experience",
	"skills",
	"responsibilities",
	"frontend",
	"backend",
	"api",
	"database",
}

// AssessJDQuality scores a job description for sufficiency. A description is
// weak when it is shorter than 80 characters or matches fewer than 3 of the
// fixed keywords. Total: an empty description is simply weak, never an error.
func AssessJDQuality(jobDescription string) JDQuality {
	jd := strings.ToLower(strings.TrimSpace(jobDescription))

	matches := 0
	for _, k := range jdKeywords {
		if strings.Contains(jd, k) {
			matches++
		}
	}

	return JDQuality{
		Length:         len(jd),
		KeywordMatches: matches,
		IsWeak:         len(jd) < 80 || matches < 3,
	}
}
