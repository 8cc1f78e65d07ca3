/*
	Project: Masomo Review - assignment review sessions for Masomo (https://masomo.cd)
	Target: single terminal session (no persistence yet)
*/
package masomoreview

/*
TODO: reviewed assignments are never removed from the reviewer's queue !!!
	- ReviewAssignment only updates the student: clear the matching queue entry too ??
	- queue entries are bare names: keep the submitting student with them so a reviewer can
	  review "HW1 from Alice" instead of typing both names

TODO: submitting does not check that the assignment is actually pending for the student
	- only "has some pending work" is enforced (Registry.SubmitAssignment)

TODO: suggestions are keyed by the student's own name, not the reviewer's
	- Suggestion.From should be the reviewer once the queue knows who submitted what

------------------------------------ Version X ----------------------------------------
TODO: persist sessions: postgres repository behind review.Repository (storage/database/...)
TODO: send notifications asynchronously once there is a long-running process to own the goroutines
*/
