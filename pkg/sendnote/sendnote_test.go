package sendnote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendReportsSuccessOnlyOnSuccess(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	e := &EmailJS{
		Config: Config{
			ServiceID:  "svc",
			TemplateID: "tpl",
			Recipients: map[string]string{"dear": "dear@example.com"},
		},
		Endpoint: srv.URL,
	}

	err := e.Send(context.Background(), Note{
		To:       "dear@example.com",
		Message:  "missing you",
		FromName: "me",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got.ServiceID != "svc" || got.TemplateID != "tpl" {
		t.Fatalf("request ids = %q/%q", got.ServiceID, got.TemplateID)
	}
	if got.TemplateParams["to_email"] != "dear@example.com" {
		t.Fatalf("to_email = %v", got.TemplateParams["to_email"])
	}
	if got.TemplateParams["note"] != "missing you" {
		t.Fatalf("note = %v", got.TemplateParams["note"])
	}
}

func TestSendReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer srv.Close()

	e := &EmailJS{Config: Config{ServiceID: "svc", TemplateID: "tpl"}, Endpoint: srv.URL}
	if err := e.Send(context.Background(), Note{To: "x", Message: "hello"}); err == nil {
		t.Fatalf("Send() did not surface the transport failure")
	}
}

func TestSendRejectsBlankMessage(t *testing.T) {
	e := &EmailJS{Config: Config{ServiceID: "svc", TemplateID: "tpl"}}
	if err := e.Send(context.Background(), Note{To: "x", Message: "   "}); err == nil {
		t.Fatalf("blank message accepted")
	}
}

func TestResolve(t *testing.T) {
	cfg := Config{Recipients: map[string]string{"dear": "dear@example.com"}}
	addr, err := cfg.Resolve(" Dear ")
	if err != nil || addr != "dear@example.com" {
		t.Fatalf("Resolve() = %q, %v", addr, err)
	}
	if _, err := cfg.Resolve("stranger"); err == nil {
		t.Fatalf("unknown alias resolved")
	}
}
