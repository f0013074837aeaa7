package repository

import (
	"context"
	"testing"
	"time"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupArtifactTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.GeneratedArtifact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestArtifactRepositoryAppendOnlyHistory(t *testing.T) {
	db := setupArtifactTestDB(t)
	repo := NewArtifactRepository(db)
	ctx := context.Background()

	schoolID := uuid.New()
	invoiceID := uuid.New()

	for i := 0; i < 3; i++ {
		artifact := &entity.GeneratedArtifact{
			SchoolID:    schoolID,
			InvoiceID:   invoiceID,
			StoragePath: "invoices/" + schoolID.String() + "/doc-" + uuid.New().String() + ".pdf",
			PublicURL:   "https://cdn.example.com/doc",
			ContentType: "application/pdf",
			SizeBytes:   1024,
			GeneratedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(ctx, artifact); err != nil {
			t.Fatalf("create artifact %d: %v", i, err)
		}
	}

	history, err := repo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		t.Fatalf("list by invoice: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 artifacts, got %d", len(history))
	}
	// Newest first.
	for i := 1; i < len(history); i++ {
		if history[i].GeneratedAt.After(history[i-1].GeneratedAt) {
			t.Errorf("history not ordered newest first at %d", i)
		}
	}
}

func TestArtifactRepositoryGetByID(t *testing.T) {
	db := setupArtifactTestDB(t)
	repo := NewArtifactRepository(db)
	ctx := context.Background()

	artifact := &entity.GeneratedArtifact{
		SchoolID:    uuid.New(),
		InvoiceID:   uuid.New(),
		StoragePath: "invoices/x/doc.pdf",
		PublicURL:   "https://cdn.example.com/doc.pdf",
		GeneratedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, artifact); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, artifact.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.StoragePath != artifact.StoragePath {
		t.Errorf("got %+v, want stored artifact", got)
	}

	missing, err := repo.GetByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestArtifactRepositoryListScopedBySchool(t *testing.T) {
	db := setupArtifactTestDB(t)
	repo := NewArtifactRepository(db)
	ctx := context.Background()

	mine := uuid.New()
	other := uuid.New()
	for _, school := range []uuid.UUID{mine, mine, other} {
		artifact := &entity.GeneratedArtifact{
			SchoolID:    school,
			InvoiceID:   uuid.New(),
			StoragePath: "invoices/" + school.String() + "/" + uuid.New().String() + ".pdf",
			PublicURL:   "https://cdn.example.com/doc",
			GeneratedAt: time.Now().UTC(),
		}
		if err := repo.Create(ctx, artifact); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	artifacts, total, err := repo.List(ctx, mine, pagination.DefaultPagination())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(artifacts) != 2 {
		t.Errorf("expected 2 artifacts for school, got total=%d len=%d", total, len(artifacts))
	}
}
