package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b\d{10}\b|\+\d{1,3}[-.\s]?\d{10}\b`)
)

// AnalyzeFormat runs the ATS-readiness heuristics over the extracted résumé
// text. The four checks (contact info, section headers, bullet usage, line
// length) run unconditionally and independently; section presence contributes
// one finding per section.
func AnalyzeFormat(resumeText string) FormatFinding {
	lower := strings.ToLower(resumeText)

	var lines []string
	for _, l := range strings.Split(resumeText, "\n") {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	finding := FormatFinding{
		Issues:       []string{},
		Warnings:     []string{},
		PassedChecks: []string{},
	}

	if emailPattern.MatchString(resumeText) || phonePattern.MatchString(resumeText) {
		finding.PassedChecks = append(finding.PassedChecks, "Contact information detected")
	} else {
		finding.Issues = append(finding.Issues, "Missing contact information (email or phone)")
	}

	for _, section := range []string{"experience", "education", "skills"} {
		if strings.Contains(lower, section) {
			finding.PassedChecks = append(finding.PassedChecks, fmt.Sprintf("%s section found", section))
		} else {
			finding.Issues = append(finding.Issues, fmt.Sprintf("Missing %s section", section))
		}
	}

	hasBullets := false
	for _, l := range lines {
		if strings.HasPrefix(l, "-") || strings.HasPrefix(l, "•") || strings.HasPrefix(l, "*") {
			hasBullets = true
			break
		}
	}
	if hasBullets {
		finding.PassedChecks = append(finding.PassedChecks, "Bullet points detected")
	} else {
		finding.Warnings = append(finding.Warnings, "Experience section may lack bullet points")
	}

	totalLen := 0
	for _, l := range lines {
		totalLen += len(l)
	}
	avgLineLength := 0.0
	if len(lines) > 0 {
		avgLineLength = float64(totalLen) / float64(len(lines))
	}
	if avgLineLength > 180 {
		finding.Warnings = append(finding.Warnings, "Lines are very long; resume may use columns")
	} else {
		finding.PassedChecks = append(finding.PassedChecks, "Text layout appears ATS-readable")
	}

	return finding
}
