package review

import (
	"fmt"
	"strings"

	"github.com/trezcool/masomo-review/core"
)

// ID is an opaque member identifier, assigned once at creation.
type ID string

// Kinds
const (
	KindStudent  = "student"
	KindReviewer = "reviewer"
)

// Member is the identity contract shared by students and reviewers.
type Member interface {
	ID() ID
	Name() string
	Email() string
	Profile() Profile
}

// Profile is a read-only summary of a Member.
type Profile struct {
	ID    ID
	Kind  string
	Name  string
	Email string
}

func (p Profile) String() string {
	kind := p.Kind
	if kind != "" {
		kind = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return fmt.Sprintf("%s Name: %s\nEmail: %s", kind, p.Name, p.Email)
}

// member holds the identity fields; name is immutable after creation.
type member struct {
	id    ID
	name  string
	email string
}

func (m *member) ID() ID        { return m.id }
func (m *member) Name() string  { return m.name }
func (m *member) Email() string { return m.email }

// NewMember contains information needed to create a new Student or Reviewer.
type NewMember struct {
	Name  string `label:"name" validate:"required,notblank"`
	Email string `label:"email"`
}

// Validate cleans the input and checks that a name is provided.
func (nm *NewMember) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	nm.Email = core.CleanString(nm.Email)

	if err := core.Validate.Struct(nm); err != nil {
		return core.NewValidationErrorFrom(err)
	}
	return nil
}
