package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-review/core"
	"github.com/trezcool/masomo-review/core/review"
)

const (
	msgInvalidInput  = "Invalid input! Please enter a valid option."
	msgInvalidOption = "Invalid option! Try again."
)

type session struct {
	reg    *review.Registry
	con    *console
	logger core.Logger
}

func newSession(reg *review.Registry, in io.Reader, out io.Writer, logger core.Logger, interactive bool) *session {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &session{
		reg:    reg,
		con:    newConsole(in, out, interactive),
		logger: logger,
	}
}

// run drives the main menu until the user exits or the input ends.
func (sess *session) run(ctx context.Context) error {
	err := sess.mainMenu(ctx)
	if err == nil || errors.Is(err, errEndOfInput) {
		sess.con.println("Goodbye!")
		return nil
	}
	return err
}

func (sess *session) mainMenu(ctx context.Context) error {
	for {
		choice, err := sess.con.choose("Main Menu",
			"Add Student",
			"Add Reviewer",
			"Login as a Student or Reviewer",
			"Exit",
		)
		if err != nil {
			if errors.Is(err, errInvalidInput) {
				sess.con.fail(msgInvalidInput)
				continue
			}
			return err
		}

		switch choice {
		case 1:
			err = sess.addStudent(ctx)
		case 2:
			err = sess.addReviewer(ctx)
		case 3:
			err = sess.login(ctx)
		case 4:
			return nil
		default:
			sess.con.fail(msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (sess *session) readMember(kind string) (review.NewMember, error) {
	var nm review.NewMember
	var err error
	if nm.Name, err = sess.con.prompt("Enter " + kind + " Name: "); err != nil {
		return nm, err
	}
	if nm.Email, err = sess.con.prompt("Enter " + kind + " Email: "); err != nil {
		return nm, err
	}
	return nm, nil
}

func (sess *session) addStudent(ctx context.Context) error {
	nm, err := sess.readMember("Student")
	if err != nil {
		return err
	}
	s, err := sess.reg.AddStudent(ctx, nm)
	if err != nil {
		return sess.report(err)
	}
	sess.con.success(fmt.Sprintf("Student %s added!", s.Name()))
	return nil
}

func (sess *session) addReviewer(ctx context.Context) error {
	nm, err := sess.readMember("Reviewer")
	if err != nil {
		return err
	}
	r, err := sess.reg.AddReviewer(ctx, nm)
	if err != nil {
		return sess.report(err)
	}
	sess.con.success(fmt.Sprintf("Reviewer %s added!", r.Name()))
	return nil
}

func (sess *session) login(ctx context.Context) error {
	choice, err := sess.con.choose("Login", "Login as Student", "Login as Reviewer")
	if err != nil {
		if errors.Is(err, errInvalidInput) {
			sess.con.fail(msgInvalidInput)
			return nil
		}
		return err
	}

	switch choice {
	case 1:
		name, err := sess.con.prompt("Enter Student Name: ")
		if err != nil {
			return err
		}
		s, err := sess.pickStudent(ctx, name)
		if err != nil {
			return sess.report(err)
		}
		sess.logger.Debug("student logged in", s)
		return sess.studentMenu(ctx, s)
	case 2:
		name, err := sess.con.prompt("Enter Reviewer Name: ")
		if err != nil {
			return err
		}
		r, err := sess.pickReviewer(ctx, name)
		if err != nil {
			return sess.report(err)
		}
		sess.logger.Debug("reviewer logged in", r)
		return sess.reviewerMenu(ctx, r)
	default:
		sess.con.fail(msgInvalidOption)
		return nil
	}
}

// pickStudent finds the student to log in as.
// When several students share the name, the user picks one by ID.
func (sess *session) pickStudent(ctx context.Context, name string) (*review.Student, error) {
	matches, err := sess.reg.StudentsNamed(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(matches) < 2 {
		return sess.reg.FindStudentByName(ctx, name)
	}
	profiles := make([]review.Profile, 0, len(matches))
	for _, s := range matches {
		profiles = append(profiles, s.Profile())
	}
	id, err := sess.chooseID("Student", profiles)
	if err != nil {
		return nil, err
	}
	return sess.reg.FindStudentByID(ctx, id)
}

func (sess *session) pickReviewer(ctx context.Context, name string) (*review.Reviewer, error) {
	matches, err := sess.reg.ReviewersNamed(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(matches) < 2 {
		return sess.reg.FindReviewerByName(ctx, name)
	}
	profiles := make([]review.Profile, 0, len(matches))
	for _, r := range matches {
		profiles = append(profiles, r.Profile())
	}
	id, err := sess.chooseID("Reviewer", profiles)
	if err != nil {
		return nil, err
	}
	return sess.reg.FindReviewerByID(ctx, id)
}

func (sess *session) chooseID(kind string, profiles []review.Profile) (review.ID, error) {
	sess.con.notice(fmt.Sprintf("%d %ss are named %s:", len(profiles), strings.ToLower(kind), profiles[0].Name))
	for _, p := range profiles {
		sess.con.println(p.String())
		sess.con.println("ID: " + string(p.ID))
	}
	id, err := sess.con.prompt("Enter " + kind + " ID: ")
	if err != nil {
		return "", err
	}
	return review.ID(id), nil
}

func (sess *session) studentMenu(ctx context.Context, s *review.Student) error {
	for {
		choice, err := sess.con.choose("Student Menu",
			"Display Pending Assignments",
			"Display Reviewed Assignments",
			"Submit Assignment",
			"See suggested iterations",
			"Go Back to Main Menu",
			"View Profile",
		)
		if err != nil {
			if errors.Is(err, errInvalidInput) {
				sess.con.fail(msgInvalidInput)
				continue
			}
			return err
		}

		switch choice {
		case 1:
			sess.con.list("Pending Assignments:", "No pending assignments!", "- ", s.PendingAssignments())
		case 2:
			sess.con.list("Reviewed Assignments:", "No reviewed assignments yet.", "- ", s.ReviewedAssignments())
		case 3:
			err = sess.submitAssignment(ctx, s)
		case 4:
			err = sess.showSuggestions(s)
		case 5:
			return nil
		case 6:
			sess.con.println(s.Profile().String())
		default:
			sess.con.fail(msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (sess *session) submitAssignment(ctx context.Context, s *review.Student) error {
	if !s.HasPendingAssignments() {
		sess.con.notice("You don't have any pending assignments!")
		return nil
	}
	assignment, err := sess.con.prompt("Enter Assignment Name: ")
	if err != nil {
		return err
	}
	reviewerName, err := sess.con.prompt("Enter Reviewer Name: ")
	if err != nil {
		return err
	}
	r, err := sess.reg.FindReviewerByName(ctx, reviewerName)
	if err != nil {
		return sess.report(err)
	}
	if err := sess.reg.SubmitAssignment(ctx, s, r, assignment); err != nil {
		return sess.report(err)
	}
	sess.con.success("Assignment submitted successfully!")
	return nil
}

func (sess *session) showSuggestions(s *review.Student) error {
	assignment, err := sess.con.prompt("Enter Assignment Name: ")
	if err != nil {
		return err
	}
	suggestions, ok := s.SuggestedIterations(assignment)
	if !ok {
		sess.con.notice("No suggested iterations for this assignment.")
		return nil
	}
	sess.con.println(fmt.Sprintf("Suggested Iterations for %s to %s:", assignment, s.Name()))
	for _, sg := range suggestions {
		sess.con.println(fmt.Sprintf("Student: %s, Suggestion: %s", sg.From, sg.Text))
	}
	return nil
}

func (sess *session) reviewerMenu(ctx context.Context, r *review.Reviewer) error {
	for {
		choice, err := sess.con.choose("Reviewer Menu",
			"Add assignments for students",
			"Review assignments",
			"Suggest iterations for an assignment",
			"Display students with pending assignments",
			"Go back to main menu",
			"Display pending assignments per student",
			"View Profile",
		)
		if err != nil {
			if errors.Is(err, errInvalidInput) {
				sess.con.fail(msgInvalidInput)
				continue
			}
			return err
		}

		switch choice {
		case 1:
			err = sess.assignToAll(ctx, r)
		case 2:
			err = sess.reviewAssignment(ctx, r)
		case 3:
			err = sess.suggestIteration(ctx, r)
		case 4:
			err = sess.showStudentsWithPendingWork(ctx)
		case 5:
			return nil
		case 6:
			err = sess.showPendingPerStudent(ctx)
		case 7:
			sess.con.println(r.Profile().String())
		default:
			sess.con.fail(msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (sess *session) assignToAll(ctx context.Context, r *review.Reviewer) error {
	assignment, err := sess.con.prompt("Enter assignment name: ")
	if err != nil {
		return err
	}
	if assignment == "" {
		sess.con.fail("Assignment name cannot be blank!")
		return nil
	}
	if _, err := sess.reg.AssignToAll(ctx, r, assignment); err != nil {
		return sess.report(err)
	}
	sess.con.success("Assignment added for all students!")
	return nil
}

func (sess *session) reviewAssignment(ctx context.Context, r *review.Reviewer) error {
	sess.con.list("Assignments submitted for review:", "No pending assignments!! :)", "- ", r.PendingAssignments())

	assignment, err := sess.con.prompt("Choose assignment name: ")
	if err != nil {
		return err
	}
	students, err := sess.reg.StudentsPendingAssignment(ctx, assignment)
	if err != nil {
		return sess.report(err)
	}
	sess.con.list("Students who haven't completed this assignment are:", "Every student has completed this assignment.", "- ", studentNames(students))

	studentName, err := sess.con.prompt("Enter student name to review the assignment for: ")
	if err != nil {
		return err
	}
	s, err := sess.reg.FindStudentByName(ctx, studentName)
	if err != nil {
		return sess.report(err)
	}
	if err := sess.reg.ReviewAssignment(ctx, r, s, assignment); err != nil {
		if errors.Is(err, review.ErrAssignmentNotFound) {
			sess.con.fail("Assignment not found for " + s.Name())
			return nil
		}
		return sess.report(err)
	}
	sess.con.success("Assignment reviewed and marked as 'completed!' by " + r.Name())
	return nil
}

func (sess *session) suggestIteration(ctx context.Context, r *review.Reviewer) error {
	if !r.HasPendingAssignments() {
		sess.con.notice("No pending assignments!! :)")
		return nil
	}
	studentName, err := sess.con.prompt("Enter student name: ")
	if err != nil {
		return err
	}
	assignment, err := sess.con.prompt("Enter assignment name: ")
	if err != nil {
		return err
	}
	suggestion, err := sess.con.prompt("Enter your suggestion: ")
	if err != nil {
		return err
	}

	s, err := sess.reg.FindStudentByName(ctx, studentName)
	if err != nil {
		return sess.report(err)
	}
	if !s.HasAssignment(assignment) {
		sess.con.fail("Assignment not found for " + s.Name())
		return nil
	}
	if err := sess.reg.SuggestIteration(ctx, s, assignment, suggestion); err != nil {
		return sess.report(err)
	}
	sess.con.success(fmt.Sprintf("Suggestion added for %s for the assignment: %s --> %s", s.Name(), assignment, suggestion))
	return nil
}

func (sess *session) showStudentsWithPendingWork(ctx context.Context) error {
	students, err := sess.reg.StudentsWithPendingAssignments(ctx)
	if err != nil {
		return sess.report(err)
	}
	sess.con.list("Students with pending assignments:", "No students with pending assignments.", "- ", studentNames(students))
	return nil
}

func (sess *session) showPendingPerStudent(ctx context.Context) error {
	pending, err := sess.reg.PendingAssignmentsForReviewer(ctx)
	if err != nil {
		return sess.report(err)
	}
	if len(pending) == 0 {
		sess.con.notice("No pending assignments!! :)")
		return nil
	}
	sess.con.println(sess.con.clr.Cyan("Pending assignments for review:"))
	for _, sa := range pending {
		sess.con.println("Student: " + sa.Student.Name())
		for _, a := range sa.Assignments {
			sess.con.println("  - " + a)
		}
	}
	return nil
}

// report prints a user-facing error and hands control back to the menu.
// Only input errors are returned, so that end of input still ends the session.
func (sess *session) report(err error) error {
	if errors.Is(err, errEndOfInput) {
		return err
	}

	var nfErr *core.NotFoundError
	var vErr *core.ValidationError
	switch {
	case errors.As(err, &nfErr):
		sess.con.fail(capitalize(nfErr.Error()) + "!")
	case errors.As(err, &vErr):
		sess.con.fail("Invalid input: " + vErr.Error())
	case errors.Is(err, review.ErrNoPendingAssignments):
		sess.con.notice("You don't have any pending assignments!")
	default:
		sess.logger.Error(fmt.Sprintf("session: %v", err), err)
		sess.con.fail("Something went wrong! Try again.")
	}
	return nil
}

func studentNames(students []*review.Student) []string {
	names := make([]string, 0, len(students))
	for _, s := range students {
		names = append(names, s.Name())
	}
	return names
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
