package vapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Irfan-Firosh/Yapply/internal/workflow"
)

func TestCreateWorkflow(t *testing.T) {
	var got workflow.Workflow
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workflow" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer vapi-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode workflow: %v", err)
		}
		w.Write([]byte(`{"id":"wf_123"}`))
	}))
	defer srv.Close()

	c := NewClient("vapi-key", "pn_1", WithBaseURL(srv.URL))

	wf := workflow.Build(workflow.Params{
		Questions:       []string{"Q1?"},
		CompanyName:     "Acme",
		InterviewerName: "Alex",
		Name:            "Acme_Backend_Interview_Workflow",
		VoiceID:         "andrew",
		ModelID:         "gpt-4o",
		TimeoutSeconds:  45,
	})

	id, err := c.CreateWorkflow(context.Background(), wf)
	if err != nil {
		t.Fatalf("CreateWorkflow: %v", err)
	}
	if id != "wf_123" {
		t.Errorf("id = %q", id)
	}
	if got.Name != "Acme_Backend_Interview_Workflow" || len(got.Nodes) != 7 {
		t.Errorf("submitted workflow name=%q nodes=%d", got.Name, len(got.Nodes))
	}
}

func TestCreateCall(t *testing.T) {
	var got callRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/call" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode call request: %v", err)
		}
		w.Write([]byte(`{"id":"call_456"}`))
	}))
	defer srv.Close()

	c := NewClient("vapi-key", "pn_1", WithBaseURL(srv.URL))

	id, err := c.CreateCall(context.Background(), "wf_123", "+15551234567", "Jane Doe")
	if err != nil {
		t.Fatalf("CreateCall: %v", err)
	}
	if id != "call_456" {
		t.Errorf("id = %q", id)
	}
	if got.WorkflowID != "wf_123" || got.PhoneNumberID != "pn_1" {
		t.Errorf("request = %+v", got)
	}
	if got.Customer.Number != "+15551234567" || got.Customer.Name != "Jane Doe" {
		t.Errorf("customer = %+v", got.Customer)
	}
	if got.WorkflowOverrides.VariableValues["candidate_name"] != "Jane Doe" {
		t.Errorf("variable overrides = %+v", got.WorkflowOverrides.VariableValues)
	}
}

func TestCreateCallUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid phone number"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("vapi-key", "pn_1", WithBaseURL(srv.URL))
	if _, err := c.CreateCall(context.Background(), "wf", "bad", "Jane"); err == nil {
		t.Fatal("expected error for 400 response")
	}
}

func TestTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/call/call_456" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id":"call_456","transcript":"AI: Hello Jane...\nUser: Hi..."}`))
	}))
	defer srv.Close()

	c := NewClient("vapi-key", "pn_1", WithBaseURL(srv.URL))
	tr, err := c.Transcript(context.Background(), "call_456")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if tr != "AI: Hello Jane...\nUser: Hi..." {
		t.Errorf("transcript = %q", tr)
	}
}
