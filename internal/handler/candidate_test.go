package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Irfan-Firosh/Yapply/pkg/model"
)

func strptr(s string) *string { return &s }

func candidateInterview() *model.Interview {
	return &model.Interview{
		ID:             11,
		CreatedAt:      time.Now().UTC(),
		CompanyID:      testCompanyID,
		CandidateName:  "Jordan Lee",
		CandidateEmail: strptr("jordan@example.com"),
		CandidatePhone: "+15550001111",
		Position:       strptr("Backend Engineer"),
		Status:         "Scheduled",
		VapiWorkflowID: strptr("wf-backend"),
		CandidateID:    strptr("ABCD42"),
		AccessCode:     strptr("$2a$10$notarealhashbutlookslikeone1234567890123456789012"),
	}
}

func TestDashboardHidesAccessCode(t *testing.T) {
	f := newFakeSupabase(t)
	h := newTestHandler(t, f, "", "")
	r := newCandidateRouter(h, candidateInterview())

	w := doRequest(r, http.MethodGet, "/candidate/dashboard", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var row model.Interview
	if err := json.Unmarshal(w.Body.Bytes(), &row); err != nil {
		t.Fatal(err)
	}
	if row.AccessCode != nil {
		t.Error("dashboard exposed the stored access code")
	}
	if row.CandidateName != "Jordan Lee" {
		t.Errorf("candidate_name = %q", row.CandidateName)
	}
}

func TestProfile(t *testing.T) {
	f := newFakeSupabase(t)
	h := newTestHandler(t, f, "", "")
	r := newCandidateRouter(h, candidateInterview())

	w := doRequest(r, http.MethodGet, "/candidate/profile", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"candidate_name":"Jordan Lee"`, `"position":"Backend Engineer"`, `"status":"Scheduled"`} {
		if !strings.Contains(body, want) {
			t.Errorf("profile missing %s: %s", want, body)
		}
	}
}

func TestCandidateCompany(t *testing.T) {
	f := newFakeSupabase(t)
	company := testCompany(t, "pw")
	seedCompany(f, company)

	h := newTestHandler(t, f, "", "")
	r := newCandidateRouter(h, candidateInterview())

	w := doRequest(r, http.MethodGet, "/candidate/company", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"username":"acme"`) {
		t.Errorf("company profile missing username: %s", body)
	}
	if strings.Contains(body, "hashed_password") {
		t.Errorf("company profile leaked private columns: %s", body)
	}
}

func TestCandidateCreateCall(t *testing.T) {
	f := newFakeSupabase(t)
	interview := candidateInterview()
	f.seed("interviews", map[string]any{
		"id":               float64(interview.ID),
		"created_at":       time.Now().UTC().Format(time.RFC3339),
		"company_id":       interview.CompanyID,
		"candidate_name":   interview.CandidateName,
		"candidate_phone":  interview.CandidatePhone,
		"status":           interview.Status,
		"vapi_workflow_id": "wf-backend",
	})

	var callBody map[string]any
	vapiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/call" {
			json.NewDecoder(r.Body).Decode(&callBody)
			json.NewEncoder(w).Encode(map[string]string{"id": "call-77"})
			return
		}
		http.Error(w, "unexpected call", http.StatusBadRequest)
	}))
	t.Cleanup(vapiSrv.Close)

	h := newTestHandler(t, f, vapiSrv.URL, "")
	r := newCandidateRouter(h, interview)

	w := doRequest(r, http.MethodGet, "/candidate/createcall", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"call_id":"call-77"`) {
		t.Errorf("response = %s", w.Body.String())
	}

	if callBody["workflowId"] != "wf-backend" {
		t.Errorf("workflowId = %v", callBody["workflowId"])
	}
	overrides, _ := callBody["workflowOverrides"].(map[string]any)
	vars, _ := overrides["variableValues"].(map[string]any)
	if vars["candidate_name"] != "Jordan Lee" {
		t.Errorf("variableValues = %v", vars)
	}

	row := f.rows("interviews")[0]
	if row["call_id"] != "call-77" || row["status"] != "Completed" {
		t.Errorf("stored row = %v", row)
	}
}

func TestCandidateCreateCallWithoutWorkflow(t *testing.T) {
	f := newFakeSupabase(t)
	interview := candidateInterview()
	interview.VapiWorkflowID = nil

	h := newTestHandler(t, f, "", "")
	r := newCandidateRouter(h, interview)

	w := doRequest(r, http.MethodGet, "/candidate/createcall", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
