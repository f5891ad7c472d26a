package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleDecode(t *testing.T) {
	s := NewServer(0)
	body, _ := json.Marshal(DecodeRequest{Word: "00c58533"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res ResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Asm != "add x10, x11, x12" {
		t.Errorf("Asm = %q", res.Asm)
	}
}

func TestHandleEncode(t *testing.T) {
	s := NewServer(0)
	body, _ := json.Marshal(EncodeRequest{Assembly: "add x10, x11, x12"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/encode", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res ResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Hex != "00c58533" {
		t.Errorf("Hex = %q", res.Hex)
	}
}

func TestHandleDecodeRejectsGet(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/decode", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleDecodeBadWord(t *testing.T) {
	s := NewServer(0)
	body, _ := json.Marshal(DecodeRequest{Word: "not-a-word"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHealth(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
