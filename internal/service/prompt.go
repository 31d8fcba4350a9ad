package service

import "fmt"

// BuildAnalysisPrompt renders the strict-JSON ATS instruction. The job
// description is the only source of requirements; the model must not infer
// skills that are not written in it.
func BuildAnalysisPrompt(resumeText, jobDescription string) string {
	if jobDescription == "" {
		jobDescription = "Not provided"
	}

	return fmt.Sprintf(`
You are a STRICT ATS (Applicant Tracking System).

NON-NEGOTIABLE RULES:
- The Job Description is the ONLY source of requirements
- Do NOT infer skills
- Do NOT assume role similarity
- If a skill is not explicitly written in the JD, IGNORE IT
- If JD lacks clear requirements, return an EMPTY required_skills array
- Be deterministic. No creativity.

TASK:
For EACH REQUIRED SKILL found in the Job Description:
- Check if it exists in the Resume text
- Mark present: true or false
- If false, briefly state WHY (missing keyword, no evidence)

RETURN STRICT JSON ONLY.
NO MARKDOWN. NO COMMENTS. NO EXTRA TEXT.

JSON FORMAT (EXACT):

{
  "summary": "",
  "required_skills": [
    {
      "skill": "",
      "present": true,
      "reason": ""
    }
  ],
  "improvements": []
}

JOB DESCRIPTION:
"""%s"""

RESUME:
"""%s"""
`, jobDescription, resumeText)
}
