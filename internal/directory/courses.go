package directory

import (
	"context"
	"log/slog"

	"github.com/Hami23p/Learnify/internal/audit"
	"github.com/Hami23p/Learnify/internal/learning"
	"github.com/Hami23p/Learnify/internal/rbac"
	"github.com/Hami23p/Learnify/internal/validate"
)

// CreateCourse creates a course taught by the instructor named instructor
// and adds it to that instructor's teaching list.
func (d *Directory) CreateCourse(ctx context.Context, actor *learning.User, title, description, instructor string) (*learning.Course, error) {
	if err := d.authorize(actor, rbac.CourseCreate); err != nil {
		return nil, err
	}
	if err := validate.SingleLine(title); err != nil {
		return nil, fieldError("title", err)
	}
	if err := validate.SingleLine(description); err != nil {
		return nil, fieldError("description", err)
	}
	inst := d.findInstructor(instructor)
	if inst == nil {
		return nil, &Error{Kind: KindNotFound, Field: "instructor", Err: ErrInstructorNotFound}
	}
	if len(d.courses) >= learning.MaxCourses {
		return nil, newError(KindCapacity, ErrCourseCapacity)
	}

	course := learning.NewCourse(d.newID(), title, description, inst.Username)
	d.courses = append(d.courses, course)
	inst.Instructor.AddTeachingCourse(course.ID)

	slog.Info("course created", "title", title, "instructor", inst.Username)
	d.emit(ctx, audit.Event{
		Type:   audit.CourseCreated,
		Actor:  actor.Username,
		Target: title,
		Data:   map[string]any{"instructor": inst.Username},
	})
	return course, nil
}

// EnrollCourse enrolls a student in the course at position selection of
// Courses. Enrolling twice adds a second row. Past the enrollment limit the
// request is dropped without error.
func (d *Directory) EnrollCourse(ctx context.Context, actor *learning.User, selection int) (*learning.Course, error) {
	if err := d.authorize(actor, rbac.CourseEnroll); err != nil {
		return nil, err
	}
	if selection < 0 || selection >= len(d.courses) {
		return nil, &Error{Kind: KindNotFound, Field: "selection", Err: ErrInvalidSelection}
	}
	course := d.courses[selection]
	if !actor.Student.Enroll(course.ID) {
		slog.Warn("enrollment limit reached", "username", actor.Username, "course", course.Title)
		return course, nil
	}

	d.emit(ctx, audit.Event{Type: audit.CourseEnrolled, Actor: actor.Username, Target: course.Title})
	return course, nil
}

// TeachingCourses lists the courses actor teaches in the order they were
// assigned.
func (d *Directory) TeachingCourses(actor *learning.User) ([]*learning.Course, error) {
	if err := d.authorize(actor, rbac.CourseViewTeaching); err != nil {
		return nil, err
	}
	return d.resolve(actor.Instructor.Teaching()), nil
}

// EnrolledCourses lists actor's enrollment rows, duplicates included.
func (d *Directory) EnrolledCourses(actor *learning.User) ([]*learning.Course, error) {
	if err := d.authorize(actor, rbac.CourseViewEnrolled); err != nil {
		return nil, err
	}
	return d.resolve(actor.Student.Enrolled()), nil
}

func (d *Directory) resolve(ids []string) []*learning.Course {
	courses := make([]*learning.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := d.Course(id); ok {
			courses = append(courses, c)
		}
	}
	return courses
}
