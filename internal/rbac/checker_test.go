package rbac

import (
	"testing"

	"github.com/Hami23p/Learnify/internal/learning"
)

func TestChecker_DefaultPolicy(t *testing.T) {
	c := NewChecker(nil)

	tests := []struct {
		role learning.Role
		perm string
		want bool
	}{
		{learning.RoleAdmin, CourseCreate, true},
		{learning.RoleAdmin, StudentRemove, true},
		{learning.RoleAdmin, CourseEnroll, false},
		{learning.RoleAdmin, QuizTake, false},
		{learning.RoleInstructor, QuizCreate, true},
		{learning.RoleInstructor, StudentRemove, true},
		{learning.RoleInstructor, CourseCreate, false},
		{learning.RoleStudent, CourseEnroll, true},
		{learning.RoleStudent, QuizTake, true},
		{learning.RoleStudent, ProgressView, true},
		{learning.RoleStudent, StudentRemove, false},
		{learning.RoleStudent, QuizCreate, false},
		{learning.Role("Guest"), QuizTake, false},
	}

	for _, tt := range tests {
		if got := c.Has(tt.role, tt.perm); got != tt.want {
			t.Errorf("Has(%s, %s) = %v, want %v", tt.role, tt.perm, got, tt.want)
		}
	}
}

func TestChecker_Wildcards(t *testing.T) {
	c := NewChecker(map[learning.Role][]string{
		learning.RoleAdmin:   {"*"},
		learning.RoleStudent: {"course:*"},
	})

	if !c.Has(learning.RoleAdmin, QuizTake) {
		t.Error("* should grant everything")
	}
	if !c.Has(learning.RoleStudent, CourseViewEnrolled) {
		t.Error("course:* should grant course:view-enrolled")
	}
	if c.Has(learning.RoleStudent, QuizTake) {
		t.Error("course:* should not grant quiz:take")
	}
}
