package cache

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/logger"
)

const (
	offlineNavigationBody = "You appear to be offline. Reconnect to load this page."
	offlineResourceBody   = "offline"
)

// Transport is a cache-first http.RoundTripper for GET requests. Cached
// responses are served without touching the network; successful network
// responses are stored for next time; a total network failure with no cached
// match degrades to a synthetic 503 instead of an error.
type Transport struct {
	base    http.RoundTripper
	d       *diskv.Diskv
	rootDir string
}

// NewTransport builds a transport caching under dir, keyed by the current
// cache version. A nil base falls back to http.DefaultTransport.
func NewTransport(dir string, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	root := filepath.Join(dir, constants.CacheDirName)
	return &Transport{
		base:    base,
		rootDir: root,
		d: diskv.New(diskv.Options{
			BasePath:     filepath.Join(root, constants.CacheVersion),
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024,
		}),
	}
}

// RoundTrip implements http.RoundTripper. Only GET requests are intercepted.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base.RoundTrip(req)
	}

	key := cacheKey(req.URL.String())
	if t.d.Has(key) {
		cached, err := t.readCached(key, req)
		if err == nil {
			return cached, nil
		}
		logger.Warn("could not read cached response", "url", req.URL.String(), "error", err)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		logger.Debug("network failure, no cached match", "url", req.URL.String(), "error", err)
		return syntheticUnavailable(req), nil
	}

	if resp.StatusCode == http.StatusOK {
		t.store(key, req, resp)
	}
	return resp, nil
}

// Precache fetches and stores each URL, tolerating individual failures.
func (t *Transport) Precache(urls []string) {
	client := &http.Client{Transport: t}
	for _, url := range urls {
		resp, err := client.Get(url)
		if err != nil {
			logger.Warn("precache fetch failed", "url", url, "error", err)
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			logger.Warn("precache fetch skipped", "url", url, "status", resp.StatusCode)
		}
	}
}

// Activate removes cache directories carrying a stale version tag.
func (t *Transport) Activate() error {
	entries, err := os.ReadDir(t.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to scan cache root: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == constants.CacheVersion {
			continue
		}
		stale := filepath.Join(t.rootDir, entry.Name())
		if err := os.RemoveAll(stale); err != nil {
			return fmt.Errorf("failed to remove stale cache %s: %w", entry.Name(), err)
		}
		logger.Debug("removed stale cache", "version", entry.Name())
	}
	return nil
}

// store persists the wire form of a response. The response body remains
// readable by the caller afterwards.
func (t *Transport) store(key string, req *http.Request, resp *http.Response) {
	blob, err := httputil.DumpResponse(resp, true)
	if err != nil {
		logger.Warn("could not snapshot response for cache", "url", req.URL.String(), "error", err)
		return
	}
	if err := t.d.Write(key, blob); err != nil {
		logger.Warn("could not write cached response", "url", req.URL.String(), "error", err)
	}
}

func (t *Transport) readCached(key string, req *http.Request) (*http.Response, error) {
	blob, err := t.d.Read(key)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(blob)), req)
}

// syntheticUnavailable is the offline fallback. Navigation requests get a
// human-readable body; everything else gets a short marker.
func syntheticUnavailable(req *http.Request) *http.Response {
	body := offlineResourceBody
	if isNavigation(req) {
		body = offlineNavigationBody
	}
	header := make(http.Header)
	header.Set("Content-Type", "text/plain; charset=utf-8")
	return &http.Response{
		Status:        http.StatusText(http.StatusServiceUnavailable),
		StatusCode:    http.StatusServiceUnavailable,
		Proto:         req.Proto,
		ProtoMajor:    req.ProtoMajor,
		ProtoMinor:    req.ProtoMinor,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

func isNavigation(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}
