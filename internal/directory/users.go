package directory

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Hami23p/Learnify/internal/audit"
	"github.com/Hami23p/Learnify/internal/learning"
	"github.com/Hami23p/Learnify/internal/rbac"
	"github.com/Hami23p/Learnify/internal/validate"
)

// RegisterInput carries the raw registration form.
type RegisterInput struct {
	Role     string
	Username string
	Name     string
	Email    string
	Password string
	Address  string
	Contact  string
}

// ProfileView is what a user sees of their own profile. The password is
// never shown.
type ProfileView struct {
	Role     learning.Role
	Username string
	Name     string
	Email    string
	Address  string
	Contact  string
}

// Register validates in and creates a new user. Checks run in form order and
// the first failure is returned.
func (d *Directory) Register(ctx context.Context, in RegisterInput) (*learning.User, error) {
	if len(d.users) >= learning.MaxUsers {
		return nil, newError(KindCapacity, ErrUserCapacity)
	}
	if err := validate.Role(in.Role); err != nil {
		return nil, fieldError("role", err)
	}
	if err := validate.Name(in.Name); err != nil {
		return nil, fieldError("name", err)
	}
	if err := validate.Username(in.Username); err != nil {
		return nil, fieldError("username", err)
	}
	if d.usernameTaken(in.Username) {
		return nil, &Error{Kind: KindConflict, Field: "username", Err: ErrUsernameTaken}
	}
	if err := validate.Password(in.Password); err != nil {
		return nil, fieldError("password", err)
	}
	if err := validate.Email(in.Email); err != nil {
		return nil, fieldError("email", err)
	}
	if d.emailTaken(in.Email) {
		return nil, &Error{Kind: KindConflict, Field: "email", Err: ErrEmailTaken}
	}
	if err := validate.SingleLine(in.Address); err != nil {
		return nil, fieldError("address", err)
	}
	if err := validate.Contact(in.Contact); err != nil {
		return nil, fieldError("contact", err)
	}

	role, _ := learning.ParseRole(in.Role)
	user, ok := learning.NewUser(role, learning.Profile{
		Username: in.Username,
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Address:  in.Address,
		Contact:  in.Contact,
	})
	if !ok {
		return nil, fieldError("role", validate.ErrInvalidRole)
	}
	d.users = append(d.users, user)
	d.created++

	slog.Info("user registered", "username", user.Username, "role", user.Role)
	d.emit(ctx, audit.Event{
		Type:   audit.UserRegistered,
		Actor:  user.Username,
		Target: user.Username,
		Data:   map[string]any{"role": user.Role.String()},
	})
	return user, nil
}

// Login returns the first user whose password equals password and whose
// username or email equals identifier.
func (d *Directory) Login(ctx context.Context, identifier, password string) (*learning.User, error) {
	for _, u := range d.users {
		if u.CheckPass(identifier, password) {
			slog.Debug("login succeeded", "username", u.Username)
			return u, nil
		}
	}
	d.emit(ctx, audit.Event{Type: audit.LoginFailed, Actor: identifier})
	return nil, newError(KindNotFound, ErrInvalidCredentials)
}

// Profile returns the displayable fields of user.
func (d *Directory) Profile(user *learning.User) ProfileView {
	return ProfileView{
		Role:     user.Role,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Address:  user.Address,
		Contact:  user.Contact,
	}
}

// RemoveStudent deletes the student named username and saves users
// immediately. A failed save is returned as a warning after the removal has
// taken effect.
func (d *Directory) RemoveStudent(ctx context.Context, actor *learning.User, username string) error {
	if err := d.authorize(actor, rbac.StudentRemove); err != nil {
		return err
	}
	idx := slices.IndexFunc(d.users, func(u *learning.User) bool {
		return u.Role == learning.RoleStudent && u.Username == username
	})
	if idx < 0 {
		return &Error{Kind: KindNotFound, Field: "username", Err: ErrStudentNotFound}
	}
	d.users = slices.Delete(d.users, idx, idx+1)

	slog.Info("student removed", "username", username, "by", actor.Username)
	d.emit(ctx, audit.Event{Type: audit.StudentRemoved, Actor: actor.Username, Target: username})
	return d.saveUsers(ctx)
}
