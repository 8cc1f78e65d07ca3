package review

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrStudentNotFound      = errors.New("student not found")
	ErrReviewerNotFound     = errors.New("reviewer not found")
	ErrAssignmentNotFound   = errors.New("assignment not found in pending list")
	ErrNoPendingAssignments = errors.New("no pending assignments")
)

// Repository holds the session's students and reviewers.
//
// Query methods return members in insertion order, and Get*ByName returns the first match.
// Records are shared: changes made through the returned pointers are visible to later reads.
type Repository interface {
	CreateStudent(ctx context.Context, s *Student) error
	CreateReviewer(ctx context.Context, r *Reviewer) error

	QueryAllStudents(ctx context.Context) ([]*Student, error)
	QueryAllReviewers(ctx context.Context) ([]*Reviewer, error)

	GetStudentByID(ctx context.Context, id ID) (*Student, error)
	GetReviewerByID(ctx context.Context, id ID) (*Reviewer, error)
	GetStudentByName(ctx context.Context, name string) (*Student, error)
	GetReviewerByName(ctx context.Context, name string) (*Reviewer, error)
}
