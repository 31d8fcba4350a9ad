package analysis

import (
	"errors"
	"strings"

	"github.com/fadilmartias/resume-analyzer/internal/apperror"
	"github.com/tidwall/gjson"
)

// NormalizeModelOutput converts raw model text into a validated Result. The
// model is told to return strict JSON but routinely wraps it in prose, so the
// span between the first "{" and the last "}" is what gets parsed. Malformed
// items inside required_skills or improvements are dropped silently; a span
// that cannot be located or parsed fails the whole normalization with a parse
// error (callers log the raw text, never return it).
func NormalizeModelOutput(raw string) (*Result, error) {
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first == -1 || last == -1 || last < first {
		return nil, apperror.New(apperror.KindParse, "model returned invalid JSON", errors.New("no JSON object found in model output"))
	}

	span := raw[first : last+1]
	if !gjson.Valid(span) {
		return nil, apperror.New(apperror.KindParse, "model returned invalid JSON", errors.New("located JSON span failed to parse"))
	}
	parsed := gjson.Parse(span)

	skills := normalizeRequiredSkills(parsed.Get("required_skills"))

	result := &Result{
		Summary:      parsed.Get("summary").String(),
		Skills:       skills,
		Strengths:    []Requirement{},
		Weaknesses:   []Requirement{},
		Improvements: normalizeImprovements(parsed.Get("improvements")),
	}

	for _, r := range skills {
		if r.Match == MatchStatusMatched {
			result.Strengths = append(result.Strengths, r)
		} else {
			result.Weaknesses = append(result.Weaknesses, r)
		}
	}

	return result, nil
}

// normalizeRequiredSkills keeps only structured items that name a skill. The
// "present" flag decides Matched vs Missing; a reason survives only for
// Missing requirements.
func normalizeRequiredSkills(list gjson.Result) []Requirement {
	reqs := []Requirement{}
	if !list.IsArray() {
		return reqs
	}

	for _, item := range list.Array() {
		if !item.IsObject() {
			continue
		}
		skill := item.Get("skill").String()
		if skill == "" {
			continue
		}

		req := Requirement{Requirement: skill, Match: MatchStatusMissing}
		if item.Get("present").Bool() {
			req.Match = MatchStatusMatched
		} else {
			req.Reason = item.Get("reason").String()
		}
		reqs = append(reqs, req)
	}
	return reqs
}

// normalizeImprovements flattens the improvements list into plain text.
// Strings pass through; objects contribute their first text-like field;
// everything else is dropped.
func normalizeImprovements(list gjson.Result) []string {
	items := []string{}
	if !list.IsArray() {
		return items
	}

	for _, item := range list.Array() {
		switch {
		case item.Type == gjson.String:
			items = append(items, item.String())
		case item.IsObject():
			for _, field := range []string{"text", "suggestion", "requirement", "skill", "name"} {
				if v := item.Get(field); v.Type == gjson.String && v.String() != "" {
					items = append(items, v.String())
					break
				}
			}
		}
	}
	return items
}
