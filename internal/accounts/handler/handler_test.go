package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"account_admin_backend/internal/accounts/service"
	"account_admin_backend/internal/accounts/transport"
	"account_admin_backend/platform/logger"
	"account_admin_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const deleteUserPath = "/callable/deleteUser"

type testProvider struct {
	calls []string
	err   error
}

func (p *testProvider) DeleteUser(_ context.Context, uid string) error {
	p.calls = append(p.calls, uid)
	return p.err
}

func (p *testProvider) Name() string { return "test" }

func newTestEngine(p *testProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(p, validator.New(), nil, logger.NewWithWriter("test", io.Discard))
	h := New(svc)

	engine := gin.New()
	engine.POST(deleteUserPath, h.DeleteUser)
	return engine
}

func invoke(t *testing.T, engine *gin.Engine, body string) (int, transport.DeleteUserResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, deleteUserPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var envelope struct {
		Result transport.DeleteUserResponse `json:"result"`
	}
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("invalid response body %s: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, envelope.Result
}

func TestDeleteUserScenarios(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		upstreamErr error
		wantSuccess bool
		wantMessage string
		wantCalls   int
	}{
		{
			name:        "upstream succeeds",
			body:        `{"data":{"uid":"abc123"}}`,
			wantSuccess: true,
			wantMessage: "User abc123 deleted successfully",
			wantCalls:   1,
		},
		{
			name:        "empty payload",
			body:        `{"data":{}}`,
			wantMessage: "UID is required",
		},
		{
			name:        "empty uid",
			body:        `{"data":{"uid":""}}`,
			wantMessage: "UID is required",
		},
		{
			name:        "null uid",
			body:        `{"data":{"uid":null}}`,
			wantMessage: "UID is required",
		},
		{
			name:        "no data member",
			body:        `{}`,
			wantMessage: "UID is required",
		},
		{
			name:        "false uid",
			body:        `{"data":{"uid":false}}`,
			wantMessage: "UID is required",
		},
		{
			name:        "zero uid",
			body:        `{"data":{"uid":0}}`,
			wantMessage: "UID is required",
		},
		{
			name:        "string data",
			body:        `{"data":"x"}`,
			wantMessage: "UID is required",
		},
		{
			name:        "array data",
			body:        `{"data":[1]}`,
			wantMessage: "UID is required",
		},
		{
			name:        "numeric uid",
			body:        `{"data":{"uid":42}}`,
			wantMessage: "Error deleting user: uid must be a string",
		},
		{
			name:        "boolean uid",
			body:        `{"data":{"uid":true}}`,
			wantMessage: "Error deleting user: uid must be a string",
		},
		{
			name:        "upstream fails",
			body:        `{"data":{"uid":"ghost"}}`,
			upstreamErr: errors.New("no user record"),
			wantMessage: "Error deleting user: no user record",
			wantCalls:   1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &testProvider{err: tc.upstreamErr}
			engine := newTestEngine(provider)

			code, res := invoke(t, engine, tc.body)

			if code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
			if res.Success != tc.wantSuccess || res.Message != tc.wantMessage {
				t.Fatalf("expected {%v, %q}, got {%v, %q}", tc.wantSuccess, tc.wantMessage, res.Success, res.Message)
			}
			if len(provider.calls) != tc.wantCalls {
				t.Fatalf("expected %d provider calls, got %d", tc.wantCalls, len(provider.calls))
			}
		})
	}
}

func TestDeleteUserRejectsNonObjectBody(t *testing.T) {
	for _, body := range []string{`not json`, `[1,2]`, `"abc"`} {
		provider := &testProvider{}
		engine := newTestEngine(provider)

		req := httptest.NewRequest(http.MethodPost, deleteUserPath, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"status":"INVALID_ARGUMENT"`) {
			t.Fatalf("body %s: unexpected response %s", body, rec.Body.String())
		}
		if len(provider.calls) != 0 {
			t.Fatalf("body %s: provider must not be called", body)
		}
	}
}

func TestDeleteUserResponseShape(t *testing.T) {
	engine := newTestEngine(&testProvider{})

	req := httptest.NewRequest(http.MethodPost, deleteUserPath, strings.NewReader(`{"data":{"uid":"abc123"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	want := `{"result":{"success":true,"message":"User abc123 deleted successfully"}}`
	if strings.TrimSpace(rec.Body.String()) != want {
		t.Fatalf("expected %s, got %s", want, rec.Body.String())
	}
}
