package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Irfan-Firosh/Yapply/pkg/model"
)

const gradingSystemPrompt = `You are a senior technical interviewer with extensive experience evaluating candidates for CS/tech positions.
Analyze the interview transcript and provide scores (0-100) and detailed comments for each category.

**SCORING GUIDELINES:**
Use the full 0-100 range with these benchmarks:
- 90-100: Exceptional performance, top-tier candidate
- 80-89: Strong performance, clearly above average
- 70-79: Good performance, meets role expectations
- 60-69: Adequate performance, some areas of concern
- 50-59: Below average, notable gaps or weaknesses
- 0-49: Poor performance, significant deficiencies

**EVALUATION CATEGORIES:**

1. **technical_score & technical_comment:** technical knowledge depth and accuracy, understanding of relevant technologies and tools, coding ability, system design concepts, engineering fundamentals. Comment should include specific examples from the transcript.

2. **communication_score & communication_comment:** clarity in explaining technical concepts, active listening and question comprehension, ability to articulate thought processes, professional engagement. Comment should highlight strengths/weaknesses with examples.

3. **problem_solving_score & problem_solving_comment:** approach to analyzing and breaking down problems, logical reasoning and structured thinking, creativity and efficiency, handling of edge cases and constraints. Comment should describe their methodology with specific instances.

4. **experience_score & experience_comment:** relevance and depth of past work experience, demonstrated impact and ownership, learning from challenges, industry knowledge. Comment should reference specific projects or experiences mentioned.

5. **leadership_score & leadership_comment:** examples of leading projects, teams, or initiatives, mentoring and knowledge sharing, decision-making and ownership, cross-team collaboration. Comment should cite specific examples or assess potential.

6. **adaptability_score & adaptability_comment:** learning new technologies or domains, handling change and ambiguity, openness to feedback, growth mindset. Comment should include examples of adaptation or learning agility.

7. **overall_score & overall_comment:** holistic assessment considering all factors, fit for the role, key strengths and primary concerns. Comment should provide the hiring recommendation with 2-3 key supporting points.

**RESPONSE FORMAT:**
Respond with a single JSON object with exactly these keys:
technical_score, technical_comment, communication_score, communication_comment,
problem_solving_score, problem_solving_comment, experience_score, experience_comment,
leadership_score, leadership_comment, adaptability_score, adaptability_comment,
overall_score, overall_comment, recommendation, key_strengths.

"recommendation" must be one of: "Strong Hire", "Hire", "No Hire", "Strong No Hire".
All comments must be 2-4 sentences, specific, evidence-based, and reference concrete examples from the transcript. Output JSON only.`

// GradeTranscript runs the fixed rubric against a call transcript and returns
// the structured evaluation. One request, no retry: a malformed or failed
// response is the caller's problem.
func (c *Client) GradeTranscript(ctx context.Context, transcript string) (*model.Evaluation, error) {
	content, err := c.Chat(ctx, ChatRequest{
		Messages: []map[string]string{
			{"role": "system", "content": gradingSystemPrompt},
			{"role": "user", "content": fmt.Sprintf("Evaluate this interview transcript and provide scores with detailed comments:\n\n**Interview Transcript:**\n%s", transcript)},
		},
		Temperature:    0.0,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var eval model.Evaluation
	if err := json.Unmarshal([]byte(content), &eval); err != nil {
		return nil, fmt.Errorf("failed to parse AI evaluation as JSON: %w; raw response: %q", err, content)
	}
	return &eval, nil
}
