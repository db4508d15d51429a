package service

import (
	"Inkwell/internal/api/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genderServiceFor(t *testing.T, handler http.HandlerFunc) GenderService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGenderService(&config.GenderConfig{URL: server.URL, Timeout: 2})
}

func TestInferGenderConfident(t *testing.T) {
	svc := genderServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jane", r.URL.Query().Get("name"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"jane","gender":"female","probability":0.98}`))
	})

	got := svc.InferGender(context.Background(), "jane doe")
	assert.Equal(t, "Female", got)
}

func TestInferGenderLowConfidence(t *testing.T) {
	svc := genderServiceFor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"sam","gender":"male","probability":0.51}`))
	})

	got := svc.InferGender(context.Background(), "Sam")
	assert.Equal(t, GenderFallback, got)
}

func TestInferGenderServerError(t *testing.T) {
	svc := genderServiceFor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	got := svc.InferGender(context.Background(), "Jane Doe")
	assert.Equal(t, GenderFallback, got)
}

func TestInferGenderEmptyName(t *testing.T) {
	svc := genderServiceFor(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no lookup expected for empty name")
	})

	got := svc.InferGender(context.Background(), "   ")
	assert.Equal(t, GenderFallback, got)
}

func TestInferGenderUnknownName(t *testing.T) {
	svc := genderServiceFor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"zzz","gender":null,"probability":0}`))
	})

	got := svc.InferGender(context.Background(), "zzz")
	assert.Equal(t, GenderFallback, got)
}
