package model

// Recommendation labels returned by the transcript grader.
const (
	RecommendStrongHire   = "Strong Hire"
	RecommendHire         = "Hire"
	RecommendNoHire       = "No Hire"
	RecommendStrongNoHire = "Strong No Hire"
)

// Evaluation is the structured grading of an interview transcript. Scores are
// 0-100; each category carries a short evidence-based comment.
type Evaluation struct {
	TechnicalScore        int    `json:"technical_score"`
	TechnicalComment      string `json:"technical_comment"`
	CommunicationScore    int    `json:"communication_score"`
	CommunicationComment  string `json:"communication_comment"`
	ProblemSolvingScore   int    `json:"problem_solving_score"`
	ProblemSolvingComment string `json:"problem_solving_comment"`
	ExperienceScore       int    `json:"experience_score"`
	ExperienceComment     string `json:"experience_comment"`
	LeadershipScore       int    `json:"leadership_score"`
	LeadershipComment     string `json:"leadership_comment"`
	AdaptabilityScore     int    `json:"adaptability_score"`
	AdaptabilityComment   string `json:"adaptability_comment"`
	OverallScore          int    `json:"overall_score"`
	OverallComment        string `json:"overall_comment"`
	Recommendation        string `json:"recommendation"`
	KeyStrengths          string `json:"key_strengths"`
}
