package cache

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mindtrackhq/mindtrack/internal/constants"
)

func TestCacheFirstServesStoredResponse(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, "profile payload")
	}))
	defer srv.Close()

	tr := NewTransport(t.TempDir(), srv.Client().Transport)
	client := &http.Client{Transport: tr}

	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL + "/profiles/user-1")
		if err != nil {
			t.Fatalf("request %d error: %v", i, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != "profile payload" {
			t.Fatalf("request %d body = %q", i, body)
		}
	}
	if hits != 1 {
		t.Errorf("origin hit %d times, want 1", hits)
	}
}

func TestCachedResponseSurvivesNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "profile payload")
	}))

	tr := NewTransport(t.TempDir(), srv.Client().Transport)
	client := &http.Client{Transport: tr}
	url := srv.URL + "/profiles/user-1"

	if _, err := client.Get(url); err != nil {
		t.Fatalf("warm-up request error: %v", err)
	}
	srv.Close()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("offline request error: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "profile payload" {
		t.Errorf("offline response = %d %q, want cached 200", resp.StatusCode, body)
	}
}

func TestSyntheticUnavailableBodies(t *testing.T) {
	tr := NewTransport(t.TempDir(), http.DefaultTransport)
	client := &http.Client{Transport: tr}

	// Nothing listens on this port; both requests fail at the network layer.
	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/page", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("navigation request error: %v", err)
	}
	navBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("navigation status = %d, want 503", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodGet, "http://127.0.0.1:1/data.json", nil)
	req.Header.Set("Accept", "application/json")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("resource request error: %v", err)
	}
	resBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(navBody) == string(resBody) {
		t.Errorf("navigation and resource bodies identical: %q", navBody)
	}
	if !strings.Contains(string(navBody), "offline") && !strings.Contains(string(navBody), "Reconnect") {
		t.Errorf("navigation body not human readable: %q", navBody)
	}
}

func TestNonGetRequestsBypassCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	tr := NewTransport(t.TempDir(), srv.Client().Transport)
	client := &http.Client{Transport: tr}

	for i := 0; i < 2; i++ {
		resp, err := client.Post(srv.URL, "application/json", strings.NewReader("{}"))
		if err != nil {
			t.Fatalf("POST %d error: %v", i, err)
		}
		resp.Body.Close()
	}
	if hits != 2 {
		t.Errorf("origin hit %d times, want 2 (no caching for POST)", hits)
	}
}

func TestNonOKResponsesAreNotCached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewTransport(t.TempDir(), srv.Client().Transport)
	client := &http.Client{Transport: tr}

	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("request %d error: %v", i, err)
		}
		resp.Body.Close()
	}
	if hits != 2 {
		t.Errorf("origin hit %d times, want 2 (errors never cached)", hits)
	}
}

func TestPrecacheToleratesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer srv.Close()

	tr := NewTransport(t.TempDir(), srv.Client().Transport)
	tr.Precache([]string{
		srv.URL + "/a",
		"http://127.0.0.1:1/unreachable",
		srv.URL + "/b",
	})

	// Reachable URLs are cached despite the failing one in the middle
	for _, path := range []string{"/a", "/b"} {
		if !tr.d.Has(cacheKey(srv.URL + path)) {
			t.Errorf("%s not cached after precache", path)
		}
	}
}

func TestActivatePurgesStaleVersions(t *testing.T) {
	dir := t.TempDir()
	tr := NewTransport(dir, http.DefaultTransport)

	root := filepath.Join(dir, constants.CacheDirName)
	stale := filepath.Join(root, "v1")
	current := filepath.Join(root, constants.CacheVersion)
	for _, d := range []string{stale, current} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	if err := tr.Activate(); err != nil {
		t.Fatalf("Activate() error: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale cache version survived Activate")
	}
	if _, err := os.Stat(current); err != nil {
		t.Error("current cache version removed by Activate")
	}
}
