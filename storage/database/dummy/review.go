package dummydb

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-review/core/review"
)

var (
	// errors
	ErrAlreadyExists = errors.New("member already exists")
	ErrEmptyID       = errors.New("member has no ID")
)

type reviewRepository struct {
	students  *studentTable
	reviewers *reviewerTable
}

var _ review.Repository = (*reviewRepository)(nil) // interface compliance check

func NewReviewRepository(db *DB) review.Repository {
	return &reviewRepository{students: db.student, reviewers: db.reviewer}
}

func (repo *reviewRepository) CreateStudent(_ context.Context, s *review.Student) error {
	if s.ID() == "" {
		return ErrEmptyID
	}
	repo.students.Lock()
	defer repo.students.Unlock()

	if _, ok := repo.students.byID[s.ID()]; ok {
		return ErrAlreadyExists
	}
	repo.students.rows = append(repo.students.rows, s)
	repo.students.byID[s.ID()] = s
	return nil
}

func (repo *reviewRepository) CreateReviewer(_ context.Context, r *review.Reviewer) error {
	if r.ID() == "" {
		return ErrEmptyID
	}
	repo.reviewers.Lock()
	defer repo.reviewers.Unlock()

	if _, ok := repo.reviewers.byID[r.ID()]; ok {
		return ErrAlreadyExists
	}
	repo.reviewers.rows = append(repo.reviewers.rows, r)
	repo.reviewers.byID[r.ID()] = r
	return nil
}

func (repo *reviewRepository) QueryAllStudents(_ context.Context) ([]*review.Student, error) {
	repo.students.RLock()
	defer repo.students.RUnlock()

	students := make([]*review.Student, len(repo.students.rows))
	copy(students, repo.students.rows)
	return students, nil
}

func (repo *reviewRepository) QueryAllReviewers(_ context.Context) ([]*review.Reviewer, error) {
	repo.reviewers.RLock()
	defer repo.reviewers.RUnlock()

	reviewers := make([]*review.Reviewer, len(repo.reviewers.rows))
	copy(reviewers, repo.reviewers.rows)
	return reviewers, nil
}

func (repo *reviewRepository) GetStudentByID(_ context.Context, id review.ID) (*review.Student, error) {
	repo.students.RLock()
	defer repo.students.RUnlock()

	if s, ok := repo.students.byID[id]; ok {
		return s, nil
	}
	return nil, review.ErrStudentNotFound
}

func (repo *reviewRepository) GetReviewerByID(_ context.Context, id review.ID) (*review.Reviewer, error) {
	repo.reviewers.RLock()
	defer repo.reviewers.RUnlock()

	if r, ok := repo.reviewers.byID[id]; ok {
		return r, nil
	}
	return nil, review.ErrReviewerNotFound
}

func (repo *reviewRepository) GetStudentByName(_ context.Context, name string) (*review.Student, error) {
	repo.students.RLock()
	defer repo.students.RUnlock()

	for _, s := range repo.students.rows {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, review.ErrStudentNotFound
}

func (repo *reviewRepository) GetReviewerByName(_ context.Context, name string) (*review.Reviewer, error) {
	repo.reviewers.RLock()
	defer repo.reviewers.RUnlock()

	for _, r := range repo.reviewers.rows {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, review.ErrReviewerNotFound
}
