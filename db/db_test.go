package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tfkr-ae/folio/domain"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "test_*.db")
	if err != nil {
		t.Fatalf("os.CreateTemp() failed: %v", err)
	}
	tempFile.Close()

	dbConn, err := New(tempFile.Name())
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}

	repo := NewRepository(dbConn)

	teardown := func() {
		repo.Close()
		os.Remove(tempFile.Name())
	}

	return repo, teardown
}

func newID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("creating uuid: %v", err)
	}
	return id
}

func testProject(t *testing.T, repo *Repository, title string, createdAt time.Time) *domain.Project {
	t.Helper()

	githubURL := "https://github.com/octocat/" + title
	project := &domain.Project{
		ID:          newID(t),
		Title:       title,
		Description: "A project used by the repository tests.",
		TechStack:   "go,sqlite",
		GitHubURL:   &githubURL,
		Source:      domain.SourceManual,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	if err := repo.InsertProject(context.Background(), project); err != nil {
		t.Fatalf("inserting project: %v", err)
	}
	return project
}

func testContactSubmission(t *testing.T, repo *Repository, name string, submittedAt time.Time) *domain.ContactSubmission {
	t.Helper()

	submission := &domain.ContactSubmission{
		ID:             newID(t),
		Name:           name,
		Email:          "visitor@example.com",
		Message:        "Hello there",
		SubmissionType: domain.DefaultSubmissionType,
		SubmittedAt:    submittedAt,
	}

	if err := repo.InsertContactSubmission(context.Background(), submission); err != nil {
		t.Fatalf("inserting contact submission: %v", err)
	}
	return submission
}

func testHireRequest(t *testing.T, repo *Repository, company string, salary string, submittedAt time.Time) *domain.HireRequest {
	t.Helper()

	request := &domain.HireRequest{
		ID:             newID(t),
		ApplicantName:  "Jane Recruiter",
		ApplicantEmail: "jane@example.com",
		ApplicantPhone: "+254700000000",
		CompanyName:    company,
		Role:           "Backend Engineer",
		OfferedSalary:  decimal.RequireFromString(salary),
		SubmittedAt:    submittedAt,
	}

	if err := repo.InsertHireRequest(context.Background(), request); err != nil {
		t.Fatalf("inserting hire request: %v", err)
	}
	return request
}
