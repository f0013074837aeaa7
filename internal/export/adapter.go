package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrShareUnavailable indicates no share transport is configured.
	ErrShareUnavailable = errors.New("export: sharing is not available")
	// ErrDownload indicates the artifact could not be fetched or written locally.
	ErrDownload = errors.New("export: download failed")
)

// Mailer delivers a document link to a recipient. Satisfied by
// pkg/email.EmailService.
type Mailer interface {
	SendDocumentLink(toEmail, schoolName, invoiceNumber, documentURL string) error
}

// Adapter shares and downloads generated artifacts. It never touches the
// object store directly: it works from the artifact's public URL.
type Adapter struct {
	mailer      Mailer
	client      *http.Client
	downloadDir string
}

// NewAdapter creates an export adapter. mailer may be nil, in which case
// Share returns ErrShareUnavailable.
func NewAdapter(mailer Mailer, downloadDir string) *Adapter {
	return &Adapter{
		mailer:      mailer,
		client:      &http.Client{Timeout: 30 * time.Second},
		downloadDir: downloadDir,
	}
}

// Share emails the artifact link to the recipient.
func (a *Adapter) Share(toEmail, schoolName, invoiceNumber, documentURL string) error {
	if a.mailer == nil {
		return ErrShareUnavailable
	}
	if err := a.mailer.SendDocumentLink(toEmail, schoolName, invoiceNumber, documentURL); err != nil {
		return fmt.Errorf("export: share failed: %w", err)
	}
	return nil
}

// Download fetches the artifact from its public URL and writes it to the
// download directory under fileName. It returns the local path.
func (a *Adapter) Download(ctx context.Context, documentURL, fileName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrDownload, resp.StatusCode)
	}

	if err := os.MkdirAll(a.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	localPath := filepath.Join(a.downloadDir, filepath.Base(fileName))
	f, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(localPath)
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	return localPath, nil
}
