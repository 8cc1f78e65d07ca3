package review

import "sort"

// Suggestion is one suggested iteration for an assignment.
type Suggestion struct {
	From string // submitter name
	Text string
}

// Student owns its pending & reviewed assignment names and the iterations suggested on them.
// Assignment names are compared textually; duplicates are allowed in pending.
type Student struct {
	member

	pending     []string
	reviewed    []string
	suggestions map[string]map[string]string // {assignment: {submitter: text}}
}

var _ Member = (*Student)(nil)

func NewStudent(id ID, name, email string) *Student {
	return &Student{
		member:      member{id: id, name: name, email: email},
		pending:     make([]string, 0),
		reviewed:    make([]string, 0),
		suggestions: make(map[string]map[string]string),
	}
}

func (s *Student) Profile() Profile {
	return Profile{ID: s.id, Kind: KindStudent, Name: s.name, Email: s.email}
}

// AddAssignment appends an assignment to the pending list.
func (s *Student) AddAssignment(name string) {
	s.pending = append(s.pending, name)
}

// HasAssignment tells whether name is anywhere in the pending list.
func (s *Student) HasAssignment(name string) bool {
	for _, a := range s.pending {
		if a == name {
			return true
		}
	}
	return false
}

// RemoveAssignment removes every pending occurrence of name.
func (s *Student) RemoveAssignment(name string) {
	kept := s.pending[:0]
	for _, a := range s.pending {
		if a != name {
			kept = append(kept, a)
		}
	}
	s.pending = kept
}

// MarkAssignmentAsCompleted moves name from pending to reviewed.
// Both lists are left untouched if name is not pending.
func (s *Student) MarkAssignmentAsCompleted(name string) error {
	if !s.HasAssignment(name) {
		return ErrAssignmentNotFound
	}
	s.reviewed = append(s.reviewed, name)
	s.RemoveAssignment(name)
	return nil
}

// SubmitAssignment forwards name to the reviewer's queue.
// The assignment stays pending for the student until it is reviewed.
func (s *Student) SubmitAssignment(name string, reviewer *Reviewer) {
	reviewer.AddPendingAssignment(name)
}

// SuggestIteration records text as the student's suggestion for assignment,
// replacing any previous one.
func (s *Student) SuggestIteration(assignment, text string) {
	if s.suggestions == nil {
		s.suggestions = make(map[string]map[string]string)
	}
	iterations, ok := s.suggestions[assignment]
	if !ok {
		iterations = make(map[string]string)
		s.suggestions[assignment] = iterations
	}
	iterations[s.name] = text
}

// SuggestedIterations lists the suggestions recorded for assignment, sorted by submitter.
// ok is false when there are none.
func (s *Student) SuggestedIterations(assignment string) (suggestions []Suggestion, ok bool) {
	iterations, ok := s.suggestions[assignment]
	if !ok || len(iterations) == 0 {
		return []Suggestion{}, false
	}
	suggestions = make([]Suggestion, 0, len(iterations))
	for from, text := range iterations {
		suggestions = append(suggestions, Suggestion{From: from, Text: text})
	}
	sort.Slice(suggestions, func(i, j int) bool { return suggestions[i].From < suggestions[j].From })
	return suggestions, true
}

func (s *Student) PendingAssignments() []string {
	return copyStrings(s.pending)
}

func (s *Student) ReviewedAssignments() []string {
	return copyStrings(s.reviewed)
}

func (s *Student) HasPendingAssignments() bool  { return len(s.pending) > 0 }
func (s *Student) HasReviewedAssignments() bool { return len(s.reviewed) > 0 }

func copyStrings(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
