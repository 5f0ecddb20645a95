// Package directory owns the users and courses of a Learnify instance and
// exposes the role-gated operations the menus drive.
package directory

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/Hami23p/Learnify/internal/audit"
	"github.com/Hami23p/Learnify/internal/learning"
	"github.com/Hami23p/Learnify/internal/persist"
	"github.com/Hami23p/Learnify/internal/rbac"
)

// Directory is the single in-memory registry. It is not safe for concurrent
// use.
type Directory struct {
	store   persist.Store
	events  audit.EventLogger
	checker *rbac.Checker
	newID   func() string

	users   []*learning.User
	courses []*learning.Course
	created int
}

// Option configures a Directory.
type Option func(*Directory)

// WithEventLogger sends audit events to l.
func WithEventLogger(l audit.EventLogger) Option {
	return func(d *Directory) {
		if l != nil {
			d.events = l
		}
	}
}

// WithChecker replaces the default role policy.
func WithChecker(c *rbac.Checker) Option {
	return func(d *Directory) {
		if c != nil {
			d.checker = c
		}
	}
}

// WithIDGenerator sets the function used to assign course IDs.
func WithIDGenerator(fn func() string) Option {
	return func(d *Directory) {
		if fn != nil {
			d.newID = fn
		}
	}
}

// Open builds a Directory and loads users, then courses, from store. Load
// failures are not fatal: the affected collection starts empty.
func Open(ctx context.Context, store persist.Store, opts ...Option) *Directory {
	if store == nil {
		store = persist.NewMemoryStore()
	}
	d := &Directory{
		store:   store,
		events:  audit.NopEventLogger{},
		checker: rbac.NewChecker(nil),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.loadUsers(ctx)
	d.loadCourses(ctx)
	slog.Info("directory opened", "users", len(d.users), "courses", len(d.courses))
	return d
}

func (d *Directory) loadUsers(ctx context.Context) {
	users, err := d.store.LoadUsers(ctx)
	switch {
	case errors.Is(err, persist.ErrNotFound):
		slog.Info("no existing user data found, starting fresh")
		return
	case err != nil:
		slog.Warn("failed to load users, starting fresh", "error", err)
		return
	}
	for _, u := range users {
		if len(d.users) >= learning.MaxUsers {
			break
		}
		if d.usernameTaken(u.Username) || d.emailTaken(u.Email) {
			slog.Warn("skipping duplicate user in stored data", "username", u.Username)
			continue
		}
		d.users = append(d.users, u)
		d.created++
	}
}

func (d *Directory) loadCourses(ctx context.Context) {
	courses, err := d.store.LoadCourses(ctx)
	switch {
	case errors.Is(err, persist.ErrNotFound):
		slog.Info("no existing course data found, starting fresh")
		return
	case err != nil:
		slog.Warn("failed to load courses, starting fresh", "error", err)
		return
	}
	for _, c := range courses {
		if len(d.courses) >= learning.MaxCourses {
			break
		}
		c.ID = d.newID()
		d.courses = append(d.courses, c)
		if inst := d.findInstructor(c.InstructorUsername); inst != nil {
			inst.Instructor.AddTeachingCourse(c.ID)
		} else {
			slog.Debug("course instructor not found", "course", c.Title, "instructor", c.InstructorUsername)
		}
	}
}

// Close saves users and courses. Failures are returned as warnings; both
// saves are always attempted.
func (d *Directory) Close(ctx context.Context) error {
	return errors.Join(d.saveUsers(ctx), d.saveCourses(ctx))
}

func (d *Directory) saveUsers(ctx context.Context) error {
	if err := d.store.SaveUsers(ctx, d.users); err != nil {
		slog.Warn("could not save users", "error", err)
		return saveWarning("users", err)
	}
	slog.Info("users saved", "count", len(d.users))
	return nil
}

func (d *Directory) saveCourses(ctx context.Context) error {
	if err := d.store.SaveCourses(ctx, d.courses); err != nil {
		slog.Warn("could not save courses", "error", err)
		return saveWarning("courses", err)
	}
	slog.Info("courses saved", "count", len(d.courses))
	return nil
}

// Users returns the registered users in insertion order.
func (d *Directory) Users() []*learning.User {
	return slices.Clone(d.users)
}

// User looks a user up by username.
func (d *Directory) User(username string) (*learning.User, bool) {
	for _, u := range d.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// TotalUsers is the number of users ever created or loaded in this process.
// Removals do not lower it.
func (d *Directory) TotalUsers() int { return d.created }

// Courses returns every course in insertion order. Any role may list them.
func (d *Directory) Courses() []*learning.Course {
	return slices.Clone(d.courses)
}

// Course looks a course up by ID.
func (d *Directory) Course(id string) (*learning.Course, bool) {
	for _, c := range d.courses {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// FindCourse returns the first course with the given title and its position.
func (d *Directory) FindCourse(title string) (*learning.Course, int, bool) {
	for i, c := range d.courses {
		if c.Title == title {
			return c, i, true
		}
	}
	return nil, -1, false
}

func (d *Directory) usernameTaken(username string) bool {
	_, ok := d.User(username)
	return ok
}

func (d *Directory) emailTaken(email string) bool {
	for _, u := range d.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

func (d *Directory) findInstructor(username string) *learning.User {
	for _, u := range d.users {
		if u.Role == learning.RoleInstructor && u.Username == username {
			return u
		}
	}
	return nil
}

// authorize checks that actor is a current member holding perm.
func (d *Directory) authorize(actor *learning.User, perm string) error {
	if actor == nil || !slices.Contains(d.users, actor) {
		return forbidden(perm)
	}
	if !d.checker.Has(actor.Role, perm) {
		return forbidden(perm)
	}
	return nil
}

func (d *Directory) emit(ctx context.Context, event audit.Event) {
	if err := d.events.LogEvent(ctx, event); err != nil {
		slog.Warn("failed to log event", "type", event.Type, "error", err)
	}
}
