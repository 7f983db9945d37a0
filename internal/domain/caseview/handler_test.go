package caseview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestGetCaseView_MissingIdentifiers(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.service(Config{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/case-view", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetCaseView(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if res.Success {
		t.Error("expected success=false")
	}
	if res.Status != http.StatusBadRequest {
		t.Errorf("expected envelope status 400, got %d", res.Status)
	}
}

func TestGetCaseView_Success(t *testing.T) {
	f := newFixture()
	f.patients.patient = somePatient()
	f.tasks.tasks = taskList(2)
	h := NewHandler(f.service(Config{CarePortalBaseURL: "https://care.example.com"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/case-view?email=grace%40example.com&limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetCaseView(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if payload["success"] != true {
		t.Error("expected success=true")
	}

	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected data object")
	}
	for _, key := range []string{"patient", "tasks", "links"} {
		if _, present := data[key]; !present {
			t.Errorf("expected %s in data", key)
		}
	}

	tasks := data["tasks"].([]interface{})
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	first := tasks[0].(map[string]interface{})
	// Degraded sub-objects must still be present as objects with null fields.
	doctorObj, ok := first["doctor"].(map[string]interface{})
	if !ok {
		t.Fatal("expected doctor sub-object")
	}
	if doctorObj["id"] != nil {
		t.Errorf("expected null doctor id, got %v", doctorObj["id"])
	}
	docs, ok := first["documents"].(map[string]interface{})
	if !ok {
		t.Fatal("expected documents sub-object")
	}
	for _, bucket := range []string{"permit", "prescription", "coverLetter", "envelope", "physicianCertificate", "other"} {
		if _, present := docs[bucket]; !present {
			t.Errorf("expected bucket %s present", bucket)
		}
		if docs[bucket] == nil {
			t.Errorf("expected bucket %s to be an array, got null", bucket)
		}
	}
}
