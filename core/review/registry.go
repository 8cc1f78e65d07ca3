package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-review/core"
)

const (
	maxSuggestions   = 3
	suggestionCutoff = 0.6
)

// Registry is the session's single source of truth for students and reviewers.
type Registry struct {
	repo   Repository
	logger core.Logger
	notify notifier

	newID func() ID // mockable
}

// NewRegistry returns a Registry backed by repo.
// mailSvc may be nil to disable notifications; logger may be nil to discard logs.
func NewRegistry(repo Repository, mailSvc core.EmailService, logger core.Logger) *Registry {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Registry{
		repo:   repo,
		logger: logger,
		notify: notifier{mailSvc: mailSvc, logger: logger},
		newID:  func() ID { return ID(uuid.New().String()) },
	}
}

// AddStudent creates a new Student. Names are not required to be unique.
func (reg *Registry) AddStudent(ctx context.Context, nm NewMember) (*Student, error) {
	if err := nm.Validate(); err != nil {
		return nil, err
	}
	s := NewStudent(reg.newID(), nm.Name, nm.Email)
	if err := reg.repo.CreateStudent(ctx, s); err != nil {
		return nil, errors.Wrap(err, "creating student")
	}
	reg.logger.Debug(fmt.Sprintf("student %q added", s.Name()), s)
	return s, nil
}

// AddReviewer creates a new Reviewer. Names are not required to be unique.
func (reg *Registry) AddReviewer(ctx context.Context, nm NewMember) (*Reviewer, error) {
	if err := nm.Validate(); err != nil {
		return nil, err
	}
	r := NewReviewer(reg.newID(), nm.Name, nm.Email)
	if err := reg.repo.CreateReviewer(ctx, r); err != nil {
		return nil, errors.Wrap(err, "creating reviewer")
	}
	reg.logger.Debug(fmt.Sprintf("reviewer %q added", r.Name()), r)
	return r, nil
}

func (reg *Registry) Students(ctx context.Context) ([]*Student, error) {
	return reg.repo.QueryAllStudents(ctx)
}

func (reg *Registry) Reviewers(ctx context.Context) ([]*Reviewer, error) {
	return reg.repo.QueryAllReviewers(ctx)
}

// FindStudentByName returns the first student created with that name.
// On a miss the error wraps ErrStudentNotFound and lists close existing names.
func (reg *Registry) FindStudentByName(ctx context.Context, name string) (*Student, error) {
	name = core.CleanString(name)
	s, err := reg.repo.GetStudentByName(ctx, name)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrStudentNotFound) {
		return nil, err
	}
	students, qErr := reg.repo.QueryAllStudents(ctx)
	if qErr != nil {
		return nil, qErr
	}
	names := make([]string, 0, len(students))
	for _, s := range students {
		names = append(names, s.Name())
	}
	return nil, core.NewNotFoundError(ErrStudentNotFound, name, core.ClosestMatches(name, names, maxSuggestions, suggestionCutoff)...)
}

// FindReviewerByName returns the first reviewer created with that name.
// On a miss the error wraps ErrReviewerNotFound and lists close existing names.
func (reg *Registry) FindReviewerByName(ctx context.Context, name string) (*Reviewer, error) {
	name = core.CleanString(name)
	r, err := reg.repo.GetReviewerByName(ctx, name)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, ErrReviewerNotFound) {
		return nil, err
	}
	reviewers, qErr := reg.repo.QueryAllReviewers(ctx)
	if qErr != nil {
		return nil, qErr
	}
	names := make([]string, 0, len(reviewers))
	for _, r := range reviewers {
		names = append(names, r.Name())
	}
	return nil, core.NewNotFoundError(ErrReviewerNotFound, name, core.ClosestMatches(name, names, maxSuggestions, suggestionCutoff)...)
}

// FindStudentByID resolves a student when several share a name.
func (reg *Registry) FindStudentByID(ctx context.Context, id ID) (*Student, error) {
	s, err := reg.repo.GetStudentByID(ctx, ID(core.CleanString(string(id))))
	if errors.Is(err, ErrStudentNotFound) {
		return nil, core.NewNotFoundError(ErrStudentNotFound, string(id))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (reg *Registry) FindReviewerByID(ctx context.Context, id ID) (*Reviewer, error) {
	r, err := reg.repo.GetReviewerByID(ctx, ID(core.CleanString(string(id))))
	if errors.Is(err, ErrReviewerNotFound) {
		return nil, core.NewNotFoundError(ErrReviewerNotFound, string(id))
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// StudentsNamed lists every student sharing that name, in creation order.
func (reg *Registry) StudentsNamed(ctx context.Context, name string) ([]*Student, error) {
	name = core.CleanString(name)
	return reg.filterStudents(ctx, func(s *Student) bool { return s.Name() == name })
}

// ReviewersNamed lists every reviewer sharing that name, in creation order.
func (reg *Registry) ReviewersNamed(ctx context.Context, name string) ([]*Reviewer, error) {
	name = core.CleanString(name)
	reviewers, err := reg.repo.QueryAllReviewers(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*Reviewer, 0, 1)
	for _, r := range reviewers {
		if r.Name() == name {
			res = append(res, r)
		}
	}
	return res, nil
}

// AssignToAll adds the assignment to every student's pending list and returns how many were reached.
func (reg *Registry) AssignToAll(ctx context.Context, reviewer *Reviewer, assignment string) (int, error) {
	if err := vala.BeginValidation().Validate(
		vala.IsNotNil(reviewer, "reviewer"),
	).Check(); err != nil {
		return 0, errors.Wrap(err, "registry.AssignToAll")
	}

	students, err := reg.repo.QueryAllStudents(ctx)
	if err != nil {
		return 0, err
	}
	n := reviewer.AddAssignment(assignment, students)
	reg.logger.Debug(fmt.Sprintf("assignment %q added for %d students", assignment, n), reviewer)
	reg.notify.assignmentAssigned(reviewer, students, assignment)
	return n, nil
}

// SubmitAssignment sends the assignment to the reviewer's queue.
// Students with nothing pending cannot submit.
func (reg *Registry) SubmitAssignment(ctx context.Context, student *Student, reviewer *Reviewer, assignment string) error {
	if err := vala.BeginValidation().Validate(
		vala.IsNotNil(student, "student"),
		vala.IsNotNil(reviewer, "reviewer"),
	).Check(); err != nil {
		return errors.Wrap(err, "registry.SubmitAssignment")
	}

	if !student.HasPendingAssignments() {
		return ErrNoPendingAssignments
	}
	student.SubmitAssignment(assignment, reviewer)
	reg.logger.Debug(fmt.Sprintf("%q submitted %q to %q", student.Name(), assignment, reviewer.Name()), student)
	reg.notify.assignmentSubmitted(student, reviewer, assignment)
	return nil
}

// ReviewAssignment marks the assignment as completed for the student.
// It is a no-op returning ErrAssignmentNotFound if the student does not have it pending.
func (reg *Registry) ReviewAssignment(ctx context.Context, reviewer *Reviewer, student *Student, assignment string) error {
	if err := vala.BeginValidation().Validate(
		vala.IsNotNil(reviewer, "reviewer"),
		vala.IsNotNil(student, "student"),
	).Check(); err != nil {
		return errors.Wrap(err, "registry.ReviewAssignment")
	}

	if !student.HasAssignment(assignment) {
		return core.NewNotFoundError(ErrAssignmentNotFound, assignment,
			core.ClosestMatches(assignment, student.PendingAssignments(), maxSuggestions, suggestionCutoff)...)
	}
	if err := reviewer.ReviewAssignment(assignment, student); err != nil {
		return err
	}
	reg.logger.Debug(fmt.Sprintf("%q reviewed %q for %q", reviewer.Name(), assignment, student.Name()), reviewer)
	reg.notify.assignmentReviewed(reviewer, student, assignment)
	return nil
}

// SuggestIteration records a suggested iteration for the student's assignment.
func (reg *Registry) SuggestIteration(ctx context.Context, student *Student, assignment, suggestion string) error {
	if err := vala.BeginValidation().Validate(
		vala.IsNotNil(student, "student"),
	).Check(); err != nil {
		return errors.Wrap(err, "registry.SuggestIteration")
	}

	student.SuggestIteration(assignment, suggestion)
	reg.logger.Debug(fmt.Sprintf("iteration suggested for %q on %q", student.Name(), assignment), student)
	reg.notify.iterationSuggested(student, assignment, suggestion)
	return nil
}

// StudentAssignments is a student along with their pending assignments.
type StudentAssignments struct {
	Student     *Student
	Assignments []string
}

// PendingAssignmentsForReviewer lists every student with pending work, in creation order.
func (reg *Registry) PendingAssignmentsForReviewer(ctx context.Context) ([]StudentAssignments, error) {
	students, err := reg.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]StudentAssignments, 0, len(students))
	for _, s := range students {
		if s.HasPendingAssignments() {
			res = append(res, StudentAssignments{Student: s, Assignments: s.PendingAssignments()})
		}
	}
	return res, nil
}

// StudentsWithPendingAssignments lists students that have at least one pending assignment.
func (reg *Registry) StudentsWithPendingAssignments(ctx context.Context) ([]*Student, error) {
	return reg.filterStudents(ctx, (*Student).HasPendingAssignments)
}

// StudentsPendingAssignment lists students that still have the assignment pending.
func (reg *Registry) StudentsPendingAssignment(ctx context.Context, assignment string) ([]*Student, error) {
	return reg.filterStudents(ctx, func(s *Student) bool { return s.HasAssignment(assignment) })
}

func (reg *Registry) filterStudents(ctx context.Context, keep func(*Student) bool) ([]*Student, error) {
	students, err := reg.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*Student, 0, len(students))
	for _, s := range students {
		if keep(s) {
			res = append(res, s)
		}
	}
	return res, nil
}
