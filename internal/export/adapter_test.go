package export

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

type recordingMailer struct {
	to, school, number, url string
	err                     error
}

func (m *recordingMailer) SendDocumentLink(toEmail, schoolName, invoiceNumber, documentURL string) error {
	m.to = toEmail
	m.school = schoolName
	m.number = invoiceNumber
	m.url = documentURL
	return m.err
}

func TestShareDeliversLink(t *testing.T) {
	mailer := &recordingMailer{}
	adapter := NewAdapter(mailer, t.TempDir())

	err := adapter.Share("parent@example.com", "Demo Academy", "INV-000042", "https://cdn.example.com/invoice.pdf")
	if err != nil {
		t.Fatalf("Share() error = %v", err)
	}
	if mailer.to != "parent@example.com" {
		t.Errorf("recipient = %q, want parent@example.com", mailer.to)
	}
	if mailer.url != "https://cdn.example.com/invoice.pdf" {
		t.Errorf("url = %q", mailer.url)
	}
}

func TestShareUnavailableWithoutMailer(t *testing.T) {
	adapter := NewAdapter(nil, t.TempDir())

	err := adapter.Share("parent@example.com", "Demo Academy", "INV-000042", "https://cdn.example.com/invoice.pdf")
	if !errors.Is(err, ErrShareUnavailable) {
		t.Fatalf("Share() error = %v, want ErrShareUnavailable", err)
	}
}

func TestShareWrapsMailerError(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp refused")}
	adapter := NewAdapter(mailer, t.TempDir())

	err := adapter.Share("parent@example.com", "Demo Academy", "INV-000042", "https://cdn.example.com/invoice.pdf")
	if err == nil {
		t.Fatal("Share() expected error")
	}
	if errors.Is(err, ErrShareUnavailable) {
		t.Fatal("mailer failure should not report ErrShareUnavailable")
	}
}

func TestDownloadWritesFile(t *testing.T) {
	content := []byte("%PDF-1.4 fake document")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(content)
	}))
	defer server.Close()

	dir := t.TempDir()
	adapter := NewAdapter(nil, dir)

	localPath, err := adapter.Download(context.Background(), server.URL, "invoice-42.pdf")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if localPath != filepath.Join(dir, "invoice-42.pdf") {
		t.Errorf("localPath = %q", localPath)
	}

	got, err := os.ReadFile(localPath)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("downloaded content mismatch")
	}
}

func TestDownloadRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewAdapter(nil, t.TempDir())

	_, err := adapter.Download(context.Background(), server.URL, "missing.pdf")
	if !errors.Is(err, ErrDownload) {
		t.Fatalf("Download() error = %v, want ErrDownload", err)
	}
}

func TestDownloadStripsPathTraversal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer server.Close()

	dir := t.TempDir()
	adapter := NewAdapter(nil, dir)

	localPath, err := adapter.Download(context.Background(), server.URL, "../../etc/evil.pdf")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if localPath != filepath.Join(dir, "evil.pdf") {
		t.Errorf("localPath = %q, escaped download dir", localPath)
	}
}
