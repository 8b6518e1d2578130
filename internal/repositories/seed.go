package repositories

import (
	"time"

	"github.com/listdeck/listdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// DevPassword is the password every seeded account accepts. The mock store
// has no registration-time hashing flow, so the hash is generated once at
// startup.
const DevPassword = "password"

var devPasswordHash = mustHashDevPassword()

func mustHashDevPassword() string {
	// MinCost keeps store construction cheap; these are fixture accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte(DevPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// SeedUsers returns the fixture accounts the dashboard ships with.
func SeedUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, PasswordHash: devPasswordHash},
		{ID: "2", Name: "Editor User", Email: "editor@example.com", Role: models.RoleEditor, PasswordHash: devPasswordHash},
		{ID: "3", Name: "Viewer User", Email: "viewer@example.com", Role: models.RoleViewer, PasswordHash: devPasswordHash},
		{ID: "4", Name: "John Doe", Email: "john.doe@example.com", Role: models.RoleEditor, PasswordHash: devPasswordHash},
		{ID: "5", Name: "Jane Smith", Email: "jane.smith@example.com", Role: models.RoleViewer, PasswordHash: devPasswordHash},
	}
}

// SeedDocuments returns the fixture documents the dashboard ships with.
func SeedDocuments() []models.Document {
	mb := func(n float64) int64 { return int64(n * 1024 * 1024) }
	return []models.Document{
		{
			ID:         "1",
			Name:       "Financial Report 2023.pdf",
			Type:       "pdf",
			Size:       mb(2.5),
			UploadedBy: models.Uploader{ID: "1", Name: "Admin User", Email: "admin@example.com"},
			UploadedAt: time.Date(2023, 12, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			Name:       "Project Proposal.docx",
			Type:       "docx",
			Size:       mb(1.2),
			UploadedBy: models.Uploader{ID: "2", Name: "Editor User", Email: "editor@example.com"},
			UploadedAt: time.Date(2023, 12, 20, 14, 45, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			Name:       "Marketing Plan.pptx",
			Type:       "pptx",
			Size:       mb(3.8),
			UploadedBy: models.Uploader{ID: "4", Name: "John Doe", Email: "john.doe@example.com"},
			UploadedAt: time.Date(2024, 1, 5, 11, 20, 0, 0, time.UTC),
		},
		{
			ID:         "4",
			Name:       "User Guide.pdf",
			Type:       "pdf",
			Size:       mb(5.1),
			UploadedBy: models.Uploader{ID: "5", Name: "Jane Smith", Email: "jane.smith@example.com"},
			UploadedAt: time.Date(2024, 1, 10, 16, 15, 0, 0, time.UTC),
		},
		{
			ID:         "5",
			Name:       "Q1 Results.xlsx",
			Type:       "xlsx",
			Size:       mb(0.8),
			UploadedBy: models.Uploader{ID: "1", Name: "Admin User", Email: "admin@example.com"},
			UploadedAt: time.Date(2024, 2, 1, 10, 5, 0, 0, time.UTC),
		},
	}
}
