// Package rbac maps roles to the operations they may perform.
package rbac

import (
	"strings"

	"github.com/Hami23p/Learnify/internal/learning"
)

// Permissions checked by the directory.
const (
	CourseCreate       = "course:create"
	CourseEnroll       = "course:enroll"
	CourseViewTeaching = "course:view-teaching"
	CourseViewEnrolled = "course:view-enrolled"
	QuizCreate         = "quiz:create"
	QuizTake           = "quiz:take"
	ProgressView       = "progress:view"
	StudentRemove      = "student:remove"
)

// RolePermissions is the default policy. Admins are not granted "*": they
// cannot enroll or take quizzes.
var RolePermissions = map[learning.Role][]string{
	learning.RoleAdmin: {
		CourseCreate,
		StudentRemove,
	},
	learning.RoleInstructor: {
		CourseViewTeaching,
		QuizCreate,
		StudentRemove,
	},
	learning.RoleStudent: {
		CourseEnroll,
		CourseViewEnrolled,
		QuizTake,
		ProgressView,
	},
}

type Checker struct {
	RolePermissions map[learning.Role][]string
}

func NewChecker(rp map[learning.Role][]string) *Checker {
	if rp == nil {
		rp = RolePermissions
	}
	return &Checker{RolePermissions: rp}
}

func (c *Checker) Has(role learning.Role, perm string) bool {
	perms, ok := c.RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if matchPerm(p, perm) {
			return true
		}
	}
	return false
}

func matchPerm(pattern, perm string) bool {
	if pattern == "*" || pattern == perm {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(perm, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
