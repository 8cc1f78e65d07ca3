package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_AddAssignment(t *testing.T) {
	s := NewStudent("s1", "Alice", "alice@test.cd")

	assert.False(t, s.HasPendingAssignments())
	assert.False(t, s.HasAssignment("HW1"))

	s.AddAssignment("HW1")
	s.AddAssignment("HW1")
	s.AddAssignment("Essay")

	assert.True(t, s.HasPendingAssignments())
	assert.True(t, s.HasAssignment("HW1"))
	assert.False(t, s.HasAssignment("hw1"), "names are compared exactly")
	assert.Equal(t, []string{"HW1", "HW1", "Essay"}, s.PendingAssignments())
}

func TestStudent_MarkAssignmentAsCompleted(t *testing.T) {
	tests := []struct {
		name         string
		pending      []string
		assignment   string
		wantErr      error
		wantPending  []string
		wantReviewed []string
	}{
		{
			name:         "not pending",
			pending:      []string{"HW1"},
			assignment:   "HW2",
			wantErr:      ErrAssignmentNotFound,
			wantPending:  []string{"HW1"},
			wantReviewed: []string{},
		},
		{
			name:         "nothing pending",
			assignment:   "HW1",
			wantErr:      ErrAssignmentNotFound,
			wantPending:  []string{},
			wantReviewed: []string{},
		},
		{
			name:         "pending",
			pending:      []string{"HW1", "HW2"},
			assignment:   "HW1",
			wantPending:  []string{"HW2"},
			wantReviewed: []string{"HW1"},
		},
		{
			name:         "removes every occurrence",
			pending:      []string{"HW1", "HW2", "HW1"},
			assignment:   "HW1",
			wantPending:  []string{"HW2"},
			wantReviewed: []string{"HW1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStudent("s1", "Alice", "")
			for _, a := range tt.pending {
				s.AddAssignment(a)
			}

			err := s.MarkAssignmentAsCompleted(tt.assignment)
			if err != tt.wantErr {
				t.Errorf("MarkAssignmentAsCompleted() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.wantPending, s.PendingAssignments())
			assert.Equal(t, tt.wantReviewed, s.ReviewedAssignments())
		})
	}
}

func TestStudent_RemoveAssignment(t *testing.T) {
	s := NewStudent("s1", "Alice", "")
	s.AddAssignment("HW1")
	s.AddAssignment("HW2")

	s.RemoveAssignment("HW3")
	assert.Equal(t, []string{"HW1", "HW2"}, s.PendingAssignments())

	s.RemoveAssignment("HW1")
	assert.Equal(t, []string{"HW2"}, s.PendingAssignments())
	assert.False(t, s.HasReviewedAssignments(), "removing does not review")
}

func TestStudent_SubmitAssignment(t *testing.T) {
	s := NewStudent("s1", "Alice", "")
	r := NewReviewer("r1", "Bob", "")
	s.AddAssignment("HW1")

	s.SubmitAssignment("HW1", r)
	s.SubmitAssignment("HW1", r)

	assert.Equal(t, []string{"HW1", "HW1"}, r.PendingAssignments())
	assert.Equal(t, []string{"HW1"}, s.PendingAssignments(), "student's pending list is unchanged")
}

func TestStudent_SuggestedIterations(t *testing.T) {
	s := NewStudent("s1", "Alice", "")

	got, ok := s.SuggestedIterations("Essay")
	assert.False(t, ok)
	assert.Empty(t, got)

	s.SuggestIteration("Essay", "v2")
	s.SuggestIteration("Essay", "v3")

	got, ok = s.SuggestedIterations("Essay")
	assert.True(t, ok)
	assert.Equal(t, []Suggestion{{From: "Alice", Text: "v3"}}, got)

	_, ok = s.SuggestedIterations("HW1")
	assert.False(t, ok, "suggestions are per assignment")
}

func TestStudent_zeroValue(t *testing.T) {
	var s Student

	assert.NotPanics(t, func() { s.SuggestIteration("Essay", "v2") })
	got, ok := s.SuggestedIterations("Essay")
	assert.True(t, ok)
	assert.Equal(t, []Suggestion{{Text: "v2"}}, got)

	s.AddAssignment("HW1")
	assert.Equal(t, []string{"HW1"}, s.PendingAssignments())
}

func TestStudent_copies(t *testing.T) {
	s := NewStudent("s1", "Alice", "")
	s.AddAssignment("HW1")

	pending := s.PendingAssignments()
	pending[0] = "tampered"

	assert.Equal(t, []string{"HW1"}, s.PendingAssignments())
}

func TestProfile_String(t *testing.T) {
	s := NewStudent("s1", "Alice", "alice@test.cd")
	r := NewReviewer("r1", "Bob", "bob@test.cd")

	assert.Equal(t, "Student Name: Alice\nEmail: alice@test.cd", s.Profile().String())
	assert.Equal(t, "Reviewer Name: Bob\nEmail: bob@test.cd", r.Profile().String())
	assert.Equal(t, ID("s1"), s.Profile().ID)
	assert.Equal(t, KindReviewer, r.Profile().Kind)
}

func TestNewMember_Validate(t *testing.T) {
	tests := []struct {
		name      string
		nm        NewMember
		wantErr   bool
		wantName  string
		wantEmail string
	}{
		{name: "empty name", nm: NewMember{}, wantErr: true},
		{name: "blank name", nm: NewMember{Name: "   "}, wantErr: true},
		{name: "no email", nm: NewMember{Name: "Alice"}, wantName: "Alice"},
		{name: "cleaned", nm: NewMember{Name: "  Alice ", Email: " a@test.cd "}, wantName: "Alice", wantEmail: "a@test.cd"},
		{name: "free-form email", nm: NewMember{Name: "Alice", Email: "not an email"}, wantName: "Alice", wantEmail: "not an email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nm := tt.nm
			err := nm.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assert.Contains(t, err.Error(), "name")
				return
			}
			assert.Equal(t, tt.wantName, nm.Name)
			assert.Equal(t, tt.wantEmail, nm.Email)
		})
	}
}
