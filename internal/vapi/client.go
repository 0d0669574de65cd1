package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Irfan-Firosh/Yapply/internal/workflow"
)

// Client talks to the voice-orchestration service. Call creation carries a
// fixed network timeout; once a request is issued it runs to completion.
type Client struct {
	apiKey        string
	phoneNumberID string
	base          string
	http          *http.Client
}

type Option func(*Client)

func WithBaseURL(base string) Option {
	return func(c *Client) { c.base = base }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func NewClient(apiKey, phoneNumberID string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		phoneNumberID: phoneNumberID,
		base:          "https://api.vapi.ai",
		http:          &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("vapi: %s %s: status %d: %s", method, path, resp.StatusCode, string(b))
	}
	return b, nil
}

// CreateWorkflow submits a generated interview graph and returns the opaque
// workflow identifier assigned by the service.
func (c *Client) CreateWorkflow(ctx context.Context, wf *workflow.Workflow) (string, error) {
	b, err := c.do(ctx, http.MethodPost, "/workflow", wf)
	if err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &created); err != nil {
		return "", fmt.Errorf("decode workflow response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("workflow response has no id")
	}
	return created.ID, nil
}

type callCustomer struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

type callRequest struct {
	Customer          callCustomer `json:"customer"`
	WorkflowID        string       `json:"workflowId"`
	Name              string       `json:"name"`
	PhoneNumberID     string       `json:"phoneNumberId"`
	WorkflowOverrides struct {
		VariableValues map[string]string `json:"variableValues"`
	} `json:"workflowOverrides"`
}

// CreateCall places an outbound interview call. The candidate name is passed
// as a workflow variable so the greeting placeholder resolves at call time.
func (c *Client) CreateCall(ctx context.Context, workflowID, phoneNumber, candidateName string) (string, error) {
	req := callRequest{
		Customer:      callCustomer{Number: phoneNumber, Name: candidateName},
		WorkflowID:    workflowID,
		Name:          fmt.Sprintf("%s's Interview", candidateName),
		PhoneNumberID: c.phoneNumberID,
	}
	req.WorkflowOverrides.VariableValues = map[string]string{"candidate_name": candidateName}

	b, err := c.do(ctx, http.MethodPost, "/call", req)
	if err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &created); err != nil {
		return "", fmt.Errorf("decode call response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("call response has no id")
	}
	return created.ID, nil
}

// Transcript fetches the transcript text for a completed call.
func (c *Client) Transcript(ctx context.Context, callID string) (string, error) {
	b, err := c.do(ctx, http.MethodGet, "/call/"+callID, nil)
	if err != nil {
		return "", err
	}

	var call struct {
		Transcript string `json:"transcript"`
	}
	if err := json.Unmarshal(b, &call); err != nil {
		return "", fmt.Errorf("decode call: %w", err)
	}
	return call.Transcript, nil
}
