package learning_test

import (
	"testing"

	"github.com/Hami23p/Learnify/internal/learning"
)

func TestNewUser_Variants(t *testing.T) {
	p := learning.Profile{Username: "u", Email: "u@x.io"}

	admin, ok := learning.NewUser(learning.RoleAdmin, p)
	if !ok || admin.Instructor != nil || admin.Student != nil {
		t.Errorf("NewUser(Admin) = %+v, %v; want payload-free admin", admin, ok)
	}

	inst, ok := learning.NewUser(learning.RoleInstructor, p)
	if !ok || inst.Instructor == nil || inst.Student != nil {
		t.Errorf("NewUser(Instructor) should carry only an instructor profile")
	}

	stu, ok := learning.NewUser(learning.RoleStudent, p)
	if !ok || stu.Student == nil || stu.Instructor != nil {
		t.Errorf("NewUser(Student) should carry only a student profile")
	}

	if _, ok := learning.NewUser(learning.Role("Tutor"), p); ok {
		t.Error("NewUser() should reject unknown role tag")
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := learning.ParseRole("Instructor"); !ok || r != learning.RoleInstructor {
		t.Errorf("ParseRole(Instructor) = %q, %v", r, ok)
	}
	if _, ok := learning.ParseRole("student"); ok {
		t.Error("ParseRole() should be case sensitive")
	}
}

func TestUser_CheckPass(t *testing.T) {
	u, _ := learning.NewUser(learning.RoleStudent, learning.Profile{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})

	tests := []struct {
		name       string
		identifier string
		password   string
		want       bool
	}{
		{"by username", "alice", "Passw0rd!", true},
		{"by email", "alice@example.com", "Passw0rd!", true},
		{"wrong password", "alice", "wrong", false},
		{"unknown identifier", "bob", "Passw0rd!", false},
		{"case differs", "Alice", "Passw0rd!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.CheckPass(tt.identifier, tt.password); got != tt.want {
				t.Errorf("CheckPass(%q, %q) = %v, want %v", tt.identifier, tt.password, got, tt.want)
			}
		})
	}
}

func TestStudentProfile_DuplicateEnrollment(t *testing.T) {
	var p learning.StudentProfile
	p.Enroll("course-1")
	p.Enroll("course-1")

	if p.EnrolledCount() != 2 {
		t.Fatalf("EnrolledCount() = %d, want 2", p.EnrolledCount())
	}
	slot, ok := p.Slot("course-1")
	if !ok || slot != 0 {
		t.Errorf("Slot() = %d, %v; want first slot 0", slot, ok)
	}

	p.Record(0, 0, 80)
	if got := p.Cell(1, 0); got.Completed || got.Best != 0 {
		t.Errorf("Cell(1, 0) = %+v, want untouched second row", got)
	}
}

func TestStudentProfile_RecordKeepsBest(t *testing.T) {
	var p learning.StudentProfile
	p.Enroll("c")

	if !p.Record(0, 2, 66) {
		t.Error("Record(66) should be a new best")
	}
	if !p.Record(0, 2, 100) {
		t.Error("Record(100) should be a new best")
	}
	if p.Record(0, 2, 33) {
		t.Error("Record(33) should not replace 100")
	}
	if got := p.Cell(0, 2); !got.Completed || got.Best != 100 {
		t.Errorf("Cell(0, 2) = %+v, want completed with best 100", got)
	}
}

func TestStudentProfile_ZeroScoreMarksCompleted(t *testing.T) {
	var p learning.StudentProfile
	p.Enroll("c")
	p.Record(0, 0, 0)
	if got := p.Cell(0, 0); !got.Completed {
		t.Errorf("Cell(0, 0) = %+v, want completed", got)
	}
}

func TestStudentProfile_EnrollCapacity(t *testing.T) {
	var p learning.StudentProfile
	for i := 0; i < learning.MaxCourses; i++ {
		p.Enroll("c")
	}
	if p.Enroll("c") {
		t.Error("Enroll() should drop the 51st enrollment")
	}
	if p.EnrolledCount() != learning.MaxCourses {
		t.Errorf("EnrolledCount() = %d, want %d", p.EnrolledCount(), learning.MaxCourses)
	}
}

func TestInstructorProfile_Teaches(t *testing.T) {
	var p learning.InstructorProfile
	p.AddTeachingCourse("go-101")
	if !p.Teaches("go-101") {
		t.Error("Teaches(go-101) = false, want true")
	}
	if p.Teaches("go-102") {
		t.Error("Teaches(go-102) = true, want false")
	}
}

func TestCourse_AddQuiz_Capacity(t *testing.T) {
	c := learning.NewCourse("id", "Go", "desc", "bob")
	for i := 0; i < learning.MaxQuizzes; i++ {
		c.AddQuiz(learning.NewQuiz("q"))
	}
	if c.AddQuiz(learning.NewQuiz("21st")) {
		t.Error("AddQuiz() should drop the 21st quiz")
	}
	if c.QuizCount() != learning.MaxQuizzes {
		t.Errorf("QuizCount() = %d, want %d", c.QuizCount(), learning.MaxQuizzes)
	}
	if c.Quiz(learning.MaxQuizzes) != nil || c.Quiz(-1) != nil {
		t.Error("Quiz() should return nil out of range")
	}
}

func TestProfiles_NilVariant(t *testing.T) {
	admin, _ := learning.NewUser(learning.RoleAdmin, learning.Profile{Username: "root"})

	if admin.Instructor.AddTeachingCourse("c1") || admin.Instructor.Teaches("c1") {
		t.Error("nil instructor profile should not accept courses")
	}
	if admin.Student.Enroll("c1") || admin.Student.EnrolledCount() != 0 {
		t.Error("nil student profile should not accept enrollments")
	}
	if _, ok := admin.Student.Slot("c1"); ok {
		t.Error("Slot() on nil student profile should report false")
	}
	if admin.Student.Record(0, 0, 100) || admin.Student.Cell(0, 0).Completed {
		t.Error("nil student profile should not record progress")
	}
}
