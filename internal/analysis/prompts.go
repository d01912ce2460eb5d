package analysis

import "fmt"

// Prompt builders are pure: identical inputs produce byte-identical prompts.
// Resume and job description text is interpolated verbatim with no escaping or
// size limit; callers own that boundary (there is no defense against prompt
// injection here).

// BuildScorePrompt renders the ATS scoring instruction for a resume / job
// description pair. The generator is instructed to answer with a strict JSON
// object carrying exactly the keys score, missing_keywords, suggestions and
// summary, with no markdown fencing.
func BuildScorePrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) analyzer and career coach.

Analyze this resume against the job description and provide:
1. An ATS compatibility score from 0-100
2. Keywords from the job description that are MISSING from the resume
3. Specific suggestions to improve the resume for this role
4. A brief summary of the analysis

RESUME:
%s

JOB DESCRIPTION:
%s

Respond in this exact JSON format (no markdown, just pure JSON):
{
    "score": <number 0-100>,
    "missing_keywords": ["keyword1", "keyword2", ...],
    "suggestions": ["suggestion1", "suggestion2", ...],
    "summary": "Brief 2-3 sentence summary of the analysis"
}
`, resumeText, jobDescription)
}

// BuildCoverLetterPrompt renders the cover letter instruction. Tone is an open
// string set and is interpolated as given; the Analysis Service applies the
// "professional" default before calling this.
func BuildCoverLetterPrompt(resumeText, jobDescription, companyName, tone string) string {
	return fmt.Sprintf(`You are an expert career coach and professional writer.

Write a compelling cover letter for this candidate applying to %s.

RESUME:
%s

JOB DESCRIPTION:
%s

INSTRUCTIONS:
- Tone: %s
- Length: 3-4 paragraphs
- Highlight relevant experience from the resume
- Show enthusiasm for the specific role and company
- Include a strong opening and call to action
- Do NOT use placeholder text like [Your Name] - write it as a complete letter

Write the cover letter now:`, companyName, resumeText, jobDescription, tone)
}
