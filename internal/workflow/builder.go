package workflow

import (
	"fmt"
)

// Params are the presentation inputs for a generated interview workflow.
// Callers are responsible for sane values; the builder does not validate.
type Params struct {
	Questions       []string
	CompanyName     string
	InterviewerName string
	Name            string
	VoiceID         string
	ModelID         string
	TimeoutSeconds  int
}

// Build turns an ordered question list into the scripted conversation graph.
//
// Every question i gets three conversation nodes: question_i asks and extracts
// answer/quality/understood variables, retry_i asks for elaboration, retry2_i
// rephrases. question_i routes to retry_i on a poor answer and onward on a
// good one; retry2_i always advances, so a candidate is never stuck in a
// retry loop. A progression node aggregates completion before the conclusion
// and the terminal hangup tool node. With no questions the introduction links
// straight to the conclusion.
func Build(p Params) *Workflow {
	var nodes []Node
	var edges []Edge

	nodes = append(nodes, introductionNode(p))

	for idx, question := range p.Questions {
		nodes = append(nodes, questionNodes(p, idx, question)...)
	}

	if len(p.Questions) > 0 {
		nodes = append(nodes, progressionNode(p))
	}
	nodes = append(nodes, conclusionNode(p), hangupNode())

	if len(p.Questions) > 0 {
		edges = append(edges, Edge{From: "introduction", To: "question_1"})
		for idx := range p.Questions {
			edges = append(edges, questionEdges(idx, len(p.Questions))...)
		}
		edges = append(edges,
			Edge{From: "progression", To: "conclusion"},
			Edge{From: "conclusion", To: "hangup"},
		)
	} else {
		edges = append(edges,
			Edge{From: "introduction", To: "conclusion"},
			Edge{From: "conclusion", To: "hangup"},
		)
	}

	return &Workflow{
		Name:         p.Name,
		Nodes:        nodes,
		Edges:        edges,
		GlobalPrompt: fmt.Sprintf("You are %s, conducting an automated interview for %s. Be professional, patient, and ensure you capture complete responses from candidates.", p.InterviewerName, p.CompanyName),
		Model:        modelConfig(p.ModelID, 0.4, 300),
		Voice:        voiceConfig(p.VoiceID),
		Transcriber:  transcriberConfig(),
		Server:       ServerConfig{TimeoutSeconds: p.TimeoutSeconds},
		ArtifactPlan: ArtifactPlan{RecordingEnabled: true, RecordingFormat: "wav"},
	}
}

func modelConfig(model string, temperature float64, maxTokens int) ModelConfig {
	return ModelConfig{Provider: "openai", Model: model, Temperature: temperature, MaxTokens: maxTokens}
}

func voiceConfig(voiceID string) VoiceConfig {
	return VoiceConfig{Provider: "azure", VoiceID: voiceID}
}

func transcriberConfig() TranscriberConfig {
	return TranscriberConfig{Provider: "assembly-ai", Language: "en", ConfidenceThreshold: 0.6}
}

func nodeDefaults(p Params, temperature float64, maxTokens int) (*ModelConfig, *VoiceConfig, *TranscriberConfig) {
	m := modelConfig(p.ModelID, temperature, maxTokens)
	v := voiceConfig(p.VoiceID)
	tr := transcriberConfig()
	return &m, &v, &tr
}

func introductionNode(p Params) Node {
	m, v, tr := nodeDefaults(p, 0.3, 200)
	return Node{
		Name:     "introduction",
		Type:     "conversation",
		IsStart:  true,
		Metadata: Metadata{Position: Position{X: -400, Y: -200}},
		Prompt:   fmt.Sprintf("You are %s, a professional AI interviewer for %s. Start the interview professionally, explain the process, and set expectations. Be warm but professional.", p.InterviewerName, p.CompanyName),
		MessagePlan: &MessagePlan{
			FirstMessage: fmt.Sprintf("Hello {{candidate_name}}, this is %s from %s. Thank you for joining us today for your interview. I'll be asking you several questions, and I want to ensure I capture your responses accurately. Please take your time with each answer. Let's begin.", p.InterviewerName, p.CompanyName),
		},
		Model:       m,
		Voice:       v,
		Transcriber: tr,
	}
}

// questionNodes builds the ask/retry/rephrase triple for question idx
// (0-based). Layout positions are derived from the index so the visual editor
// never stacks two nodes of the same role.
func questionNodes(p Params, idx int, question string) []Node {
	n := idx + 1
	x := -300 + idx*250
	y := 100 + idx*200

	qm, qv, qtr := nodeDefaults(p, 0.4, 300)
	ask := Node{
		Name:     fmt.Sprintf("question_%d", n),
		Type:     "conversation",
		Metadata: Metadata{Position: Position{X: x, Y: y}},
		Prompt:   fmt.Sprintf("Ask question %d clearly and professionally. After asking, listen carefully to the candidate's response. Acknowledge their answer briefly before proceeding.", n),
		VariableExtractionPlan: &ExtractionPlan{Output: []Variable{
			{Type: "string", Title: fmt.Sprintf("answer_%d", n), Description: fmt.Sprintf("Candidate's answer to question %d", n)},
			{Type: "number", Title: fmt.Sprintf("quality_%d", n), Description: "Answer quality score 1-10 based on completeness and relevance"},
			{Type: "boolean", Title: fmt.Sprintf("understood_%d", n), Description: "Whether the candidate understood and answered the question"},
		}},
		MessagePlan: &MessagePlan{FirstMessage: question},
		Model:       qm,
		Voice:       qv,
		Transcriber: qtr,
	}

	rm, rv, rtr := nodeDefaults(p, 0.4, 250)
	retry := Node{
		Name:     fmt.Sprintf("retry_%d", n),
		Type:     "conversation",
		Metadata: Metadata{Position: Position{X: x + 300, Y: y + 100}},
		Prompt:   "Politely ask the candidate to clarify or expand on their answer. Be encouraging and specific about what you need.",
		MessagePlan: &MessagePlan{
			FirstMessage: fmt.Sprintf("I'd like to make sure I understand your response completely. Could you please elaborate on your answer to: '%s'? Feel free to provide more details or examples.", question),
		},
		Model:       rm,
		Voice:       rv,
		Transcriber: rtr,
	}

	r2m, r2v, r2tr := nodeDefaults(p, 0.4, 250)
	retry2 := Node{
		Name:     fmt.Sprintf("retry2_%d", n),
		Type:     "conversation",
		Metadata: Metadata{Position: Position{X: x + 300, Y: y + 200}},
		Prompt:   "Ask the question in a different way to help the candidate understand. Be supportive and provide context.",
		MessagePlan: &MessagePlan{
			FirstMessage: fmt.Sprintf("Let me rephrase that question to make it clearer: %s Please share your thoughts or experience related to this.", question),
		},
		Model:       r2m,
		Voice:       r2v,
		Transcriber: r2tr,
	}

	return []Node{ask, retry, retry2}
}

func progressionNode(p Params) Node {
	m, v, tr := nodeDefaults(p, 0.3, 200)
	return Node{
		Name:     "progression",
		Type:     "conversation",
		Metadata: Metadata{Position: Position{X: 200, Y: 800}},
		Prompt:   "Assess if all questions have been answered satisfactorily. If yes, proceed to conclusion. If not, identify which questions need more attention.",
		VariableExtractionPlan: &ExtractionPlan{Output: []Variable{
			{Type: "boolean", Title: "interview_complete", Description: "Whether all questions have satisfactory answers"},
			{Type: "number", Title: "overall_score", Description: "Overall interview quality score 1-10"},
		}},
		MessagePlan: &MessagePlan{
			FirstMessage: "Thank you for your responses. Let me review what we've covered and ensure I have all the information needed.",
		},
		Model:       m,
		Voice:       v,
		Transcriber: tr,
	}
}

func conclusionNode(p Params) Node {
	m, v, tr := nodeDefaults(p, 0.3, 200)
	return Node{
		Name:     "conclusion",
		Type:     "conversation",
		Metadata: Metadata{Position: Position{X: 400, Y: 1000}},
		Prompt:   "Thank the candidate professionally, explain next steps, and end the interview on a positive note.",
		MessagePlan: &MessagePlan{
			FirstMessage: fmt.Sprintf("Thank you for your time today, {{candidate_name}}. You've provided thoughtful responses to our questions. Our team at %s will review your interview and be in touch within the next few business days with next steps. We appreciate your interest in joining our team. Have a wonderful day!", p.CompanyName),
		},
		Model:       m,
		Voice:       v,
		Transcriber: tr,
	}
}

func hangupNode() Node {
	tool := Tool{
		Type: "endCall",
		Messages: []ToolMessage{
			{Type: "request-start", Content: "Interview completed successfully. Ending call.", Blocking: true},
		},
	}
	tool.Function.Name = "end_interview"
	tool.Function.Parameters.Type = "object"
	tool.Function.Parameters.Required = []string{}
	tool.Function.Parameters.Properties = map[string]any{}

	return Node{
		Name:     "hangup",
		Type:     "tool",
		Metadata: Metadata{Position: Position{X: 600, Y: 1000}},
		Tool:     &tool,
	}
}

// questionEdges wires the five branches for question idx (0-based): a retry
// branch on a weak answer, an advance branch on a good one, a second retry, a
// recovery advance, and the unconditional advance after the second retry.
func questionEdges(idx, total int) []Edge {
	n := idx + 1
	q := fmt.Sprintf("question_%d", n)
	retry := fmt.Sprintf("retry_%d", n)
	retry2 := fmt.Sprintf("retry2_%d", n)

	next := "progression"
	if n < total {
		next = fmt.Sprintf("question_%d", n+1)
	}

	return []Edge{
		{
			From: q, To: retry,
			Condition: &Condition{Type: "ai", Prompt: fmt.Sprintf(`Return {"retry": true} if {$[%s].understood_%d} == false or {$[%s].quality_%d} < 6 or the response is too short/unclear.`, q, n, q, n)},
		},
		{
			From: q, To: next,
			Condition: &Condition{Type: "ai", Prompt: fmt.Sprintf(`Return {"next": true} if {$[%s].understood_%d} == true and {$[%s].quality_%d} >= 6.`, q, n, q, n)},
		},
		{
			From: retry, To: retry2,
			Condition: &Condition{Type: "ai", Prompt: fmt.Sprintf(`Return {"retry2": true} if the response is still unclear or {$[%s].quality_%d} < 6 after the first retry.`, q, n)},
		},
		{
			From: retry, To: next,
			Condition: &Condition{Type: "ai", Prompt: fmt.Sprintf(`Return {"next": true} if the response is now clear and {$[%s].quality_%d} >= 6 after clarification.`, q, n)},
		},
		{
			From: retry2, To: next,
			Condition: &Condition{Type: "ai", Prompt: `Return {"next": true} to proceed to the next question after the second retry attempt.`},
		},
	}
}
