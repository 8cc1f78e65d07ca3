package review

import (
	"fmt"
	"net/mail"

	"github.com/trezcool/masomo-review/core"
)

// email templates
const (
	tmplAssignmentAssigned  = "assignment_assigned"
	tmplAssignmentSubmitted = "assignment_submitted"
	tmplAssignmentReviewed  = "assignment_reviewed"
	tmplIterationSuggested  = "iteration_suggested"
)

type notificationData struct {
	To         string
	From       string
	Assignment string
	Suggestion string
}

// notifier mails members about what happened to their assignments.
// A nil mailSvc disables notifications.
type notifier struct {
	mailSvc core.EmailService
	logger  core.Logger
}

func (n notifier) enabled() bool { return n.mailSvc != nil }

func (n notifier) message(to Member, subject, tmpl string, data notificationData) (*core.EmailMessage, bool) {
	if to.Email() == "" {
		return nil, false
	}
	addr, err := mail.ParseAddress(to.Email())
	if err != nil {
		n.logger.Warn(fmt.Sprintf("not notifying %s: invalid email %q", to.Name(), to.Email()), err, to)
		return nil, false
	}
	if addr.Name == "" {
		addr.Name = to.Name()
	}
	data.To = to.Name()
	return &core.EmailMessage{
		To:           []mail.Address{*addr},
		Subject:      subject,
		TemplateName: tmpl,
		TemplateData: data,
	}, true
}

func (n notifier) send(msgs ...*core.EmailMessage) {
	if len(msgs) > 0 {
		n.mailSvc.SendMessages(msgs...)
	}
}

func (n notifier) assignmentAssigned(from *Reviewer, students []*Student, assignment string) {
	if !n.enabled() {
		return
	}
	msgs := make([]*core.EmailMessage, 0, len(students))
	for _, s := range students {
		msg, ok := n.message(s, "New assignment: "+assignment, tmplAssignmentAssigned, notificationData{
			From:       from.Name(),
			Assignment: assignment,
		})
		if ok {
			msgs = append(msgs, msg)
		}
	}
	n.send(msgs...)
}

func (n notifier) assignmentSubmitted(from *Student, to *Reviewer, assignment string) {
	if !n.enabled() {
		return
	}
	if msg, ok := n.message(to, "Assignment submitted: "+assignment, tmplAssignmentSubmitted, notificationData{
		From:       from.Name(),
		Assignment: assignment,
	}); ok {
		n.send(msg)
	}
}

func (n notifier) assignmentReviewed(by *Reviewer, to *Student, assignment string) {
	if !n.enabled() {
		return
	}
	if msg, ok := n.message(to, "Assignment reviewed: "+assignment, tmplAssignmentReviewed, notificationData{
		From:       by.Name(),
		Assignment: assignment,
	}); ok {
		n.send(msg)
	}
}

func (n notifier) iterationSuggested(to *Student, assignment, suggestion string) {
	if !n.enabled() {
		return
	}
	if msg, ok := n.message(to, "Suggested iteration: "+assignment, tmplIterationSuggested, notificationData{
		Assignment: assignment,
		Suggestion: suggestion,
	}); ok {
		n.send(msg)
	}
}
