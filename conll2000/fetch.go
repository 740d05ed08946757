package conll2000

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/essentials"
)

// A Fetcher downloads a named corpus file and returns the path
// of the local copy.
//
// Implementations must be idempotent: when the file is already
// present locally, no download happens.
type Fetcher interface {
	Fetch(url, name string, size int64) (string, error)
}

// An HTTPFetcher downloads corpus files over HTTP into Dir,
// gunzipping files whose names end in ".gz".
type HTTPFetcher struct {
	// Dir is the directory where files are stored.
	Dir string

	// Client is used for downloads. If it is nil,
	// http.DefaultClient is used.
	Client *http.Client
}

// Fetch downloads the named file from the base URL unless the
// local copy already exists.
//
// When size is positive, the downloaded byte count must match
// it exactly; a mismatch is an error.
func (h *HTTPFetcher) Fetch(url, name string, size int64) (path string, err error) {
	defer essentials.AddCtxTo("fetch "+name, &err)

	dest := filepath.Join(h.Dir, strings.TrimSuffix(name, ".gz"))
	if _, statErr := os.Stat(dest); statErr == nil {
		return dest, nil
	}
	if h.Dir != "" {
		if err := os.MkdirAll(h.Dir, 0755); err != nil {
			return "", err
		}
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(strings.TrimSuffix(url, "/") + "/" + name)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if size > 0 && int64(len(data)) != size {
		return "", fmt.Errorf("expected %d bytes but got %d", size, len(data))
	}
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", err
		}
		if data, err = io.ReadAll(gz); err != nil {
			return "", err
		}
		if err := gz.Close(); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", err
	}
	return dest, nil
}
