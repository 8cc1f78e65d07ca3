package review

// Reviewer owns the queue of assignment names submitted for review.
type Reviewer struct {
	member

	pending []string
}

var _ Member = (*Reviewer)(nil)

func NewReviewer(id ID, name, email string) *Reviewer {
	return &Reviewer{
		member:  member{id: id, name: name, email: email},
		pending: make([]string, 0),
	}
}

func (r *Reviewer) Profile() Profile {
	return Profile{ID: r.id, Kind: KindReviewer, Name: r.name, Email: r.email}
}

// AddPendingAssignment queues name for review. Duplicates are kept.
func (r *Reviewer) AddPendingAssignment(name string) {
	r.pending = append(r.pending, name)
}

func (r *Reviewer) PendingAssignments() []string {
	return copyStrings(r.pending)
}

func (r *Reviewer) HasPendingAssignments() bool { return len(r.pending) > 0 }

// ReviewAssignment marks name as completed for the student.
// The reviewer's own queue is not updated.
func (r *Reviewer) ReviewAssignment(name string, student *Student) error {
	return student.MarkAssignmentAsCompleted(name)
}

// AddAssignment adds name to the pending list of every student and returns how many were reached.
func (r *Reviewer) AddAssignment(name string, students []*Student) int {
	for _, s := range students {
		s.AddAssignment(name)
	}
	return len(students)
}

func (r *Reviewer) SuggestIteration(student *Student, assignment, text string) {
	student.SuggestIteration(assignment, text)
}
