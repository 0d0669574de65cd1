package workflow

// Types mirroring the voice-orchestration service's workflow JSON. Edge
// conditions are natural-language prompts evaluated by the service, never
// locally; they are carried as opaque strings.

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Metadata struct {
	Position Position `json:"position"`
}

type ModelConfig struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
}

type VoiceConfig struct {
	Provider string `json:"provider"`
	VoiceID  string `json:"voiceId"`
}

type TranscriberConfig struct {
	Provider            string  `json:"provider"`
	Language            string  `json:"language"`
	ConfidenceThreshold float64 `json:"confidenceThreshold"`
}

type Variable struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ExtractionPlan struct {
	Output []Variable `json:"output"`
}

type MessagePlan struct {
	FirstMessage string `json:"firstMessage"`
}

type ToolMessage struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Blocking bool   `json:"blocking"`
}

type ToolFunction struct {
	Name       string `json:"name"`
	Parameters struct {
		Type       string         `json:"type"`
		Required   []string       `json:"required"`
		Properties map[string]any `json:"properties"`
	} `json:"parameters"`
}

type Tool struct {
	Type     string        `json:"type"`
	Function ToolFunction  `json:"function"`
	Messages []ToolMessage `json:"messages"`
}

type Node struct {
	Name                   string             `json:"name"`
	Type                   string             `json:"type"`
	IsStart                bool               `json:"isStart,omitempty"`
	Metadata               Metadata           `json:"metadata"`
	Prompt                 string             `json:"prompt,omitempty"`
	VariableExtractionPlan *ExtractionPlan    `json:"variableExtractionPlan,omitempty"`
	MessagePlan            *MessagePlan       `json:"messagePlan,omitempty"`
	Model                  *ModelConfig       `json:"model,omitempty"`
	Voice                  *VoiceConfig       `json:"voice,omitempty"`
	Transcriber            *TranscriberConfig `json:"transcriber,omitempty"`
	Tool                   *Tool              `json:"tool,omitempty"`
}

type Condition struct {
	Type   string `json:"type"`
	Prompt string `json:"prompt"`
}

type Edge struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Condition *Condition `json:"condition,omitempty"`
}

type ServerConfig struct {
	TimeoutSeconds int `json:"timeoutSeconds"`
}

type ArtifactPlan struct {
	RecordingEnabled bool   `json:"recordingEnabled"`
	RecordingFormat  string `json:"recordingFormat"`
}

// Workflow is the full graph submitted to the voice service. The top-level
// model/voice/transcriber act as defaults for every node.
type Workflow struct {
	Name         string            `json:"name"`
	Nodes        []Node            `json:"nodes"`
	Edges        []Edge            `json:"edges"`
	GlobalPrompt string            `json:"globalPrompt"`
	Model        ModelConfig       `json:"model"`
	Voice        VoiceConfig       `json:"voice"`
	Transcriber  TranscriberConfig `json:"transcriber"`
	Server       ServerConfig      `json:"server"`
	ArtifactPlan ArtifactPlan      `json:"artifactPlan"`
}
