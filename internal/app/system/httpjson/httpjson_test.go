package httpjson_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/httpjson"
)

func TestWriteSetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Write(rec, 201, map[string]string{"id": "abc"})

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"id":"abc"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestErrorBodyShape(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Error(rec, 404, "Association not found")

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	want := `{"error":"Association not found"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestDecode(t *testing.T) {
	type in struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Oak Hills"}`))
		var dst in
		if err := httpjson.Decode(req, &dst); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if dst.Name != "Oak Hills" {
			t.Errorf("Name = %q", dst.Name)
		}
	})

	t.Run("empty body decodes to zero value", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", nil)
		var dst in
		if err := httpjson.Decode(req, &dst); err != nil {
			t.Fatalf("Decode of empty body failed: %v", err)
		}
		if dst.Name != "" {
			t.Errorf("Name = %q, want empty", dst.Name)
		}
	})

	t.Run("malformed body errors", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
		var dst in
		if err := httpjson.Decode(req, &dst); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})
}
