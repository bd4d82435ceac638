package marvel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	signer, err := NewSigner("pub", "priv")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	signer.now = func() time.Time { return time.UnixMilli(1000) }
	return signer
}

func TestClientGetCarriesAuthParams(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		_, _ = w.Write([]byte(`{"data":{"results":[]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestSigner(t), server.Client())
	params := url.Values{}
	params.Set("offset", "0")
	params.Set("limit", "10")
	body, err := client.Get(context.Background(), "/characters", params)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("expected a response body")
	}

	if captured.Get("ts") != "1000" {
		t.Fatalf("expected ts 1000 got %s", captured.Get("ts"))
	}
	if captured.Get("apikey") != "pub" {
		t.Fatalf("expected apikey pub got %s", captured.Get("apikey"))
	}
	if captured.Get("hash") != Sign("1000", "priv", "pub") {
		t.Fatalf("hash param does not verify: %s", captured.Get("hash"))
	}
	if captured.Get("offset") != "0" || captured.Get("limit") != "10" {
		t.Fatalf("operation params missing: %v", captured)
	}
}

func TestClientGetUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestSigner(t), server.Client())
	_, err := client.Get(context.Background(), "/comics", url.Values{})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream got %v", err)
	}
}
