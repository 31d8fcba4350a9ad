// Package analysis holds the pure evaluation heuristics: model output
// normalization, résumé format checks, job-description quality gating, and
// score derivation. Nothing here touches the network or the database.
package analysis

const (
	MatchStatusMatched = "Matched"
	MatchStatusMissing = "Missing"
)

// Requirement is one job-description requirement checked against the résumé.
// Reason is set only for Missing requirements.
type Requirement struct {
	Requirement string `json:"requirement"`
	Match       string `json:"match"`
	Reason      string `json:"reason,omitempty"`
}

// Result is the normalized model output.
type Result struct {
	Summary      string        `json:"summary"`
	Skills       []Requirement `json:"skills"`
	Strengths    []Requirement `json:"strengths"`
	Weaknesses   []Requirement `json:"weaknesses"`
	Improvements []string      `json:"improvements"`
}

// FormatFinding aggregates the résumé format heuristics.
type FormatFinding struct {
	Issues       []string `json:"issues"`
	Warnings     []string `json:"warnings"`
	PassedChecks []string `json:"passedChecks"`
}

// JDQuality reports whether the job description carries enough signal for a
// meaningful evaluation.
type JDQuality struct {
	Length         int  `json:"length"`
	KeywordMatches int  `json:"keywordMatches"`
	IsWeak         bool `json:"isWeak"`
}

// Scores are the derived match percentages, all clamped to [0,100].
type Scores struct {
	Overall             int       `json:"overall"`
	SkillsMatch         int       `json:"skillsMatch"`
	AtsCompatibility    int       `json:"atsCompatibility"`
	MatchedRequirements int       `json:"matchedRequirements"`
	MissingRequirements int       `json:"missingRequirements"`
	TotalRequirements   int       `json:"totalRequirements"`
	JDQuality           JDQuality `json:"jdQuality"`
}
