package storage

import "testing"

func TestPublicURLPreferredBase(t *testing.T) {
	s := &S3Store{bucket: "edupay-docs", baseURL: "https://cdn.edupay.example"}
	got := s.PublicURL("invoices/s1/invoice-a-1.pdf")
	want := "https://cdn.edupay.example/invoices/s1/invoice-a-1.pdf"
	if got != want {
		t.Errorf("public url = %q, want %q", got, want)
	}
}

func TestPublicURLFallsBackToBucketURL(t *testing.T) {
	s := &S3Store{bucket: "edupay-docs"}
	got := s.PublicURL("invoices/s1/invoice-a-1.pdf")
	want := "https://edupay-docs.s3.amazonaws.com/invoices/s1/invoice-a-1.pdf"
	if got != want {
		t.Errorf("public url = %q, want %q", got, want)
	}
}
