// Package learning defines the platform's domain entities: users with their
// role-specific state, courses, quizzes and multiple-choice questions.
package learning

// Capacity limits. They match the limits of existing data files and must not
// change.
const (
	MaxOptions   = 5
	MaxQuestions = 10
	MaxQuizzes   = 20
	MaxCourses   = 50
	MaxUsers     = 100
)

// Role is the tag stored as the first line of every user record.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleInstructor Role = "Instructor"
	RoleStudent    Role = "Student"
)

// ParseRole maps a stored role tag to a Role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return r, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// Title is the display label of a role.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleInstructor:
		return "Instructor"
	case RoleStudent:
		return "Student"
	}
	return "Unknown"
}
