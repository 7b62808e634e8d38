package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const keyListBody = `{"public_keys":[
	{"key":"-----BEGIN PUBLIC KEY-----\nold\n-----END PUBLIC KEY-----","key_identifier":"old-key","is_current":false},
	{"key":"-----BEGIN PUBLIC KEY-----\ncurrent\n-----END PUBLIC KEY-----","key_identifier":"current-key","is_current":true}
]}`

func TestPublicKey(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meta/public_keys/copilot_api" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(keyListBody))
	}))
	defer server.Close()

	keys := NewGitHubKeys(server.URL, 5*time.Second, testLogger())

	pemKey, err := keys.PublicKey(context.Background(), "tok", "current-key")
	if err != nil {
		t.Fatalf("public key: %v", err)
	}
	if pemKey != "-----BEGIN PUBLIC KEY-----\ncurrent\n-----END PUBLIC KEY-----" {
		t.Fatalf("key = %q", pemKey)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("authorization = %q", gotAuth)
	}
}

func TestPublicKey_UnknownIdentifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(keyListBody))
	}))
	defer server.Close()

	keys := NewGitHubKeys(server.URL, 5*time.Second, testLogger())

	if _, err := keys.PublicKey(context.Background(), "tok", "missing"); err == nil {
		t.Fatal("expected error for unknown identifier")
	}
}

func TestPublicKey_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	keys := NewGitHubKeys(server.URL, 5*time.Second, testLogger())

	if _, err := keys.PublicKey(context.Background(), "tok", "current-key"); err == nil {
		t.Fatal("expected error when the key service is down")
	}
}
