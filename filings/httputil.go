package filings

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// diskCache is a disk cache for HTTP responses that expires every day.
//
// Filings are published quarterly, there is no point in asking the model
// twice the same day. The request body is part of the key, so a different
// prompt or model is a different entry.
type diskCache struct {
	base http.RoundTripper
	dir  string
	now  func() time.Time
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key, err := c.key(req)
	if err != nil {
		return nil, err
	}

	if resp, err := c.get(key, req); err == nil { // Cache hit
		log.Printf("%v %v%v (cached)", req.Method, req.URL.Host, req.URL.Path)
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// key reads the request body, restores it, and returns a unique key for the
// request on that day.
func (c *diskCache) key(req *http.Request) (string, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	h := sha1.New()
	fmt.Fprintf(h, "%s %s %s\n", c.now().Format(time.DateOnly), req.Method, req.URL.String())
	h.Write(body)
	return fmt.Sprintf("hcmp-%x", h.Sum(nil)), nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o600)
}

// Daily returns an http client caching successful responses in 'dir' until
// the end of the day. An empty 'dir' means the system temp directory.
func Daily(dir string) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{
		Transport: &diskCache{base: http.DefaultTransport, dir: dir, now: time.Now},
	}
}
