package jd

import "time"

const (
	SourcePreset = "preset"
	SourceUser   = "user"

	// Presets older than this are ignored in favor of user text.
	staleAfter = 30 * 24 * time.Hour
)

// Resolution is the job description an analysis actually runs against.
type Resolution struct {
	Text        string
	Source      string
	LastUpdated *time.Time
}

// Resolve picks between a curated preset and the user-supplied text. A preset
// wins only when it exists for (company, role) and is not stale; otherwise the
// user text is used as-is, empty included. No other fallback ordering exists —
// an empty final text flows through and the quality gate marks it weak.
func Resolve(company, role, userText string, presets PresetLookup, now time.Time) Resolution {
	if preset, ok := presets.Lookup(company, role); ok && !isStale(preset, now) {
		updated := preset.LastUpdated
		return Resolution{Text: preset.Text, Source: SourcePreset, LastUpdated: &updated}
	}
	return Resolution{Text: userText, Source: SourceUser}
}

func isStale(p Preset, now time.Time) bool {
	if p.LastUpdated.IsZero() {
		return true
	}
	return now.Sub(p.LastUpdated) > staleAfter
}
