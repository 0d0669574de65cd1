package workflow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testParams(questions ...string) Params {
	return Params{
		Questions:       questions,
		CompanyName:     "TechCorp Solutions",
		InterviewerName: "Alex",
		Name:            "Technical Interview Workflow",
		VoiceID:         "andrew",
		ModelID:         "gpt-4o",
		TimeoutSeconds:  45,
	}
}

func nodeNames(w *Workflow) []string {
	names := make([]string, len(w.Nodes))
	for i, n := range w.Nodes {
		names[i] = n.Name
	}
	return names
}

func findNode(t *testing.T, w *Workflow, name string) Node {
	t.Helper()
	for _, n := range w.Nodes {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("node %q not found in %v", name, nodeNames(w))
	return Node{}
}

func TestBuildEmptyQuestionList(t *testing.T) {
	w := Build(testParams())

	if got, want := nodeNames(w), []string{"introduction", "conclusion", "hangup"}; strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("nodes = %v, want %v", got, want)
	}
	if len(w.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(w.Edges))
	}
	if w.Edges[0].From != "introduction" || w.Edges[0].To != "conclusion" {
		t.Errorf("edge 0 = %+v", w.Edges[0])
	}
	if w.Edges[1].From != "conclusion" || w.Edges[1].To != "hangup" {
		t.Errorf("edge 1 = %+v", w.Edges[1])
	}
}

func TestBuildNodeAndEdgeCounts(t *testing.T) {
	for n := 1; n <= 5; n++ {
		questions := make([]string, n)
		for i := range questions {
			questions[i] = fmt.Sprintf("Question %d?", i+1)
		}
		w := Build(testParams(questions...))

		if got, want := len(w.Nodes), 3*n+4; got != want {
			t.Errorf("n=%d: nodes = %d, want %d", n, got, want)
		}
		if got, want := len(w.Edges), 5*n+3; got != want {
			t.Errorf("n=%d: edges = %d, want %d", n, got, want)
		}
	}
}

func TestBuildTwoQuestionScenario(t *testing.T) {
	w := Build(testParams(
		"Tell me about your experience with Go.",
		"How do you design a rate limiter?",
	))

	want := []string{
		"introduction",
		"question_1", "retry_1", "retry2_1",
		"question_2", "retry_2", "retry2_2",
		"progression", "conclusion", "hangup",
	}
	if got := nodeNames(w); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("nodes = %v, want %v", got, want)
	}

	intro := findNode(t, w, "introduction")
	if !intro.IsStart {
		t.Error("introduction is not the start node")
	}
	if !strings.Contains(intro.MessagePlan.FirstMessage, "{{candidate_name}}") {
		t.Error("greeting lacks the candidate name placeholder")
	}

	hangup := findNode(t, w, "hangup")
	if hangup.Type != "tool" || hangup.Tool == nil || hangup.Tool.Type != "endCall" {
		t.Errorf("hangup is not an endCall tool node: %+v", hangup)
	}
}

func TestBuildExtractedVariables(t *testing.T) {
	w := Build(testParams("Q1?", "Q2?"))

	q2 := findNode(t, w, "question_2")
	if q2.VariableExtractionPlan == nil {
		t.Fatal("question_2 has no extraction plan")
	}
	titles := make([]string, 0, 3)
	for _, v := range q2.VariableExtractionPlan.Output {
		titles = append(titles, v.Type+":"+v.Title)
	}
	want := "string:answer_2,number:quality_2,boolean:understood_2"
	if strings.Join(titles, ",") != want {
		t.Errorf("extracted variables = %v", titles)
	}
	if q2.MessagePlan.FirstMessage != "Q2?" {
		t.Errorf("question_2 first message = %q", q2.MessagePlan.FirstMessage)
	}
}

func TestBuildEdgePolicy(t *testing.T) {
	w := Build(testParams("Q1?", "Q2?"))

	type key struct{ from, to string }
	byPair := map[key]Edge{}
	for _, e := range w.Edges {
		byPair[key{e.From, e.To}] = e
	}

	// question_1 branches to retry_1 and onward to question_2, both conditional
	retryEdge, ok := byPair[key{"question_1", "retry_1"}]
	if !ok || retryEdge.Condition == nil {
		t.Fatal("missing conditional edge question_1 -> retry_1")
	}
	if !strings.Contains(retryEdge.Condition.Prompt, "understood_1") || !strings.Contains(retryEdge.Condition.Prompt, "quality_1") {
		t.Errorf("retry condition does not reference extracted variables: %q", retryEdge.Condition.Prompt)
	}

	advance, ok := byPair[key{"question_1", "question_2"}]
	if !ok || advance.Condition == nil {
		t.Fatal("missing conditional edge question_1 -> question_2")
	}
	if !strings.Contains(advance.Condition.Prompt, ">= 6") {
		t.Errorf("advance condition = %q", advance.Condition.Prompt)
	}

	// last question advances to progression
	if _, ok := byPair[key{"question_2", "progression"}]; !ok {
		t.Error("missing edge question_2 -> progression")
	}

	// retry chain: retry_1 -> retry2_1 conditional, retry2_1 always advances
	if e, ok := byPair[key{"retry_1", "retry2_1"}]; !ok || e.Condition == nil {
		t.Error("missing conditional edge retry_1 -> retry2_1")
	}
	forced, ok := byPair[key{"retry2_1", "question_2"}]
	if !ok {
		t.Fatal("missing forced advance retry2_1 -> question_2")
	}
	if forced.Condition == nil || !strings.Contains(forced.Condition.Prompt, "proceed") {
		t.Errorf("forced advance edge = %+v", forced)
	}

	// no edge ever routes back to an earlier question
	if _, ok := byPair[key{"retry2_2", "retry_2"}]; ok {
		t.Error("retry2 must not loop back")
	}
}

func TestBuildPositionsDistinctPerRole(t *testing.T) {
	w := Build(testParams("Q1?", "Q2?", "Q3?"))

	seen := map[string]map[Position]string{}
	role := func(name string) string {
		switch {
		case strings.HasPrefix(name, "retry2_"):
			return "retry2"
		case strings.HasPrefix(name, "retry_"):
			return "retry"
		case strings.HasPrefix(name, "question_"):
			return "question"
		}
		return name
	}
	for _, n := range w.Nodes {
		r := role(n.Name)
		if seen[r] == nil {
			seen[r] = map[Position]string{}
		}
		if prev, dup := seen[r][n.Metadata.Position]; dup {
			t.Errorf("nodes %s and %s share position %+v", prev, n.Name, n.Metadata.Position)
		}
		seen[r][n.Metadata.Position] = n.Name
	}
}

func TestBuildTopLevelDefaults(t *testing.T) {
	w := Build(testParams("Q1?"))

	if w.Model.Model != "gpt-4o" || w.Model.Provider != "openai" {
		t.Errorf("model defaults = %+v", w.Model)
	}
	if w.Voice.VoiceID != "andrew" {
		t.Errorf("voice defaults = %+v", w.Voice)
	}
	if w.Server.TimeoutSeconds != 45 {
		t.Errorf("server timeout = %d", w.Server.TimeoutSeconds)
	}
	if !strings.Contains(w.GlobalPrompt, "Alex") || !strings.Contains(w.GlobalPrompt, "TechCorp Solutions") {
		t.Errorf("global prompt = %q", w.GlobalPrompt)
	}
	if !w.ArtifactPlan.RecordingEnabled || w.ArtifactPlan.RecordingFormat != "wav" {
		t.Errorf("artifact plan = %+v", w.ArtifactPlan)
	}
}

func TestSaveWritesJSON(t *testing.T) {
	w := Build(testParams("Q1?"))

	path := filepath.Join(t.TempDir(), "workflow.json")
	if err := Save(w, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var round Workflow
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("saved file is not valid workflow JSON: %v", err)
	}
	if len(round.Nodes) != len(w.Nodes) || len(round.Edges) != len(w.Edges) {
		t.Errorf("round trip lost nodes/edges: %d/%d vs %d/%d", len(round.Nodes), len(round.Edges), len(w.Nodes), len(w.Edges))
	}
}
