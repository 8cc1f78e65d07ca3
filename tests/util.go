package testutil

import (
	"context"
	"testing"

	"github.com/trezcool/masomo-review/core"
	"github.com/trezcool/masomo-review/core/review"
	dummydb "github.com/trezcool/masomo-review/storage/database/dummy"
)

// NewConfig returns a test configuration with notifications on the console backend.
func NewConfig() *core.Config {
	return &core.Config{
		Env:           "TEST",
		TestMode:      true,
		AppName:       "Masomo Review",
		Build:         "test",
		LogLevel:      "off",
		Notifications: true,
		EmailBackend:  "console",
	}
}

// NewRepository returns an empty in-memory review repository.
func NewRepository(t *testing.T) review.Repository {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	return dummydb.NewReviewRepository(db)
}

func CreateStudent(t *testing.T, reg *review.Registry, name, email string, assignments ...string) *review.Student {
	s, err := reg.AddStudent(context.Background(), review.NewMember{Name: name, Email: email})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	for _, a := range assignments {
		s.AddAssignment(a)
	}
	return s
}

func CreateReviewer(t *testing.T, reg *review.Registry, name, email string) *review.Reviewer {
	r, err := reg.AddReviewer(context.Background(), review.NewMember{Name: name, Email: email})
	if err != nil {
		t.Fatalf("createReviewer() failed: %v", err)
	}
	return r
}
