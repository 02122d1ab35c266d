// pkg/download/download.go - fetching the add-in package over HTTP.

package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/windowsadmins/teamsfix/pkg/logging"
)

// ToFile performs a plain GET of url and writes the full response body
// to dest. There is no retry, no resume, and no checksum verification;
// any transport error, non-success status, or write failure is returned
// as-is.
func ToFile(url, dest string) error {
	if url == "" {
		return fmt.Errorf("invalid parameters: url cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create directory structure: %w", err)
	}

	logging.Info("Starting download", "url", url, "destination", dest)

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to open destination file: %w", err)
	}
	defer out.Close()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to prepare HTTP request: %w", err)
	}

	// No client timeout: a slow CDN fetch is preferable to a truncated
	// package, and the run is synchronous anyway.
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status code: %d", resp.StatusCode)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write downloaded data: %w", err)
	}

	logging.Info("Download completed successfully", "file", dest)
	return nil
}
