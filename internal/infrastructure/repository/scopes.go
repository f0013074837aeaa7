package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// SchoolIDKey is the context key for the resolved school (tenant) ID
	SchoolIDKey ctxKey = "school_id"
	// SkipSchoolScopeKey is the context key for skipping school scope (super admin)
	SkipSchoolScopeKey ctxKey = "skip_school_scope"
)

// SchoolScope returns a GORM scope that filters by school.
// If SkipSchoolScopeKey is true in context (super admin), returns all records.
func SchoolScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipSchoolScopeKey).(bool); ok && skipScope {
			return db
		}

		schoolID, ok := ctx.Value(SchoolIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if school context missing.
			// This prevents accidental cross-tenant data access.
			return db.Where("1 = 0")
		}
		return db.Where("school_id = ?", schoolID)
	}
}

// WithSkipSchoolScope adds skip school scope flag to context (for super admins)
func WithSkipSchoolScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipSchoolScopeKey, skip)
}

// WithSchool adds school ID to context
func WithSchool(ctx context.Context, schoolID uuid.UUID) context.Context {
	return context.WithValue(ctx, SchoolIDKey, schoolID)
}

// GetSchoolID extracts school ID from context
func GetSchoolID(ctx context.Context) (uuid.UUID, bool) {
	schoolID, ok := ctx.Value(SchoolIDKey).(uuid.UUID)
	return schoolID, ok
}
