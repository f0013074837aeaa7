package middleware

import (
	"errors"
	"strings"

	"github.com/edupay/edupay-api/internal/domain/repository"
	infraRepo "github.com/edupay/edupay-api/internal/infrastructure/repository"
	"github.com/edupay/edupay-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchoolIDKey is the gin context key holding the resolved school ID.
const SchoolIDKey = "school_id"

// ExtractSchoolFromHost extracts the school slug from a subdomain,
// e.g. "demo-academy.edupay.example" -> "demo-academy"
func ExtractSchoolFromHost(host string) (string, error) {
	// Remove port if present
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return "", errors.New("invalid subdomain")
	}
	return parts[0], nil
}

// SchoolMiddleware resolves the school for the request and adds it to the
// context. Resolution order: X-School-ID header, then subdomain slug.
func SchoolMiddleware(schoolRepo repository.SchoolRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Explicit header wins: admin tooling addresses schools by ID.
		if headerID := c.GetHeader("X-School-ID"); headerID != "" {
			schoolID, err := uuid.Parse(headerID)
			if err != nil {
				response.BadRequest(c, "Invalid X-School-ID header")
				c.Abort()
				return
			}
			school, err := schoolRepo.GetByID(c.Request.Context(), schoolID)
			if err != nil || school == nil {
				response.NotFound(c, "School not found")
				c.Abort()
				return
			}
			setSchool(c, school.ID)
			c.Next()
			return
		}

		slug, err := ExtractSchoolFromHost(c.Request.Host)
		if err != nil {
			// Requests without a subdomain proceed unscoped; RequireSchool
			// rejects them on school-scoped routes.
			c.Next()
			return
		}

		school, err := schoolRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil || school == nil {
			response.NotFound(c, "School not found")
			c.Abort()
			return
		}

		setSchool(c, school.ID)
		c.Next()
	}
}

func setSchool(c *gin.Context, schoolID uuid.UUID) {
	// Gin context for middleware/handlers
	c.Set(SchoolIDKey, schoolID)
	// Request context for services/repositories
	ctx := infraRepo.WithSchool(c.Request.Context(), schoolID)
	c.Request = c.Request.WithContext(ctx)
}

// RequireSchool ensures a valid school context exists
func RequireSchool() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(SchoolIDKey)
		if !exists {
			response.BadRequest(c, "School context required")
			c.Abort()
			return
		}

		id, ok := value.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.BadRequest(c, "Invalid school context")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSchoolID retrieves the school ID from gin context
func GetSchoolID(c *gin.Context) uuid.UUID {
	value, exists := c.Get(SchoolIDKey)
	if !exists {
		return uuid.Nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
