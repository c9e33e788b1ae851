package db

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tfkr-ae/folio/domain"
)

func TestContactRepo_InsertContactSubmission(t *testing.T) {
	t.Run("should store and read back a submission", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		submittedAt := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
		want := testContactSubmission(t, repo, "Ada", submittedAt)

		got, err := repo.GetContactSubmissionByID(context.Background(), want.ID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if !got.SubmittedAt.Equal(want.SubmittedAt) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want.SubmittedAt, got.SubmittedAt)
		}

		got.SubmittedAt = want.SubmittedAt
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, got)
		}
	})
}

func TestContactRepo_GetContactSubmissions(t *testing.T) {
	t.Run("should return submissions newest first", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		base := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
		first := testContactSubmission(t, repo, "first", base)
		second := testContactSubmission(t, repo, "second", base.Add(time.Second))

		got, err := repo.GetContactSubmissions(context.Background(), 0)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", len(got))
		}
		if got[0].ID != second.ID || got[1].ID != first.ID {
			t.Fatalf("\nwanted:\n[%v %v]\ngot:\n[%v %v]", second.ID, first.ID, got[0].ID, got[1].ID)
		}
	})
}

func TestContactRepo_GetContactSubmissionByID(t *testing.T) {
	t.Run("should return ErrNotFound for an unknown id", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		_, err := repo.GetContactSubmissionByID(context.Background(), uuid.New())
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", domain.ErrNotFound, err)
		}
	})
}
