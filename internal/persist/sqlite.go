package persist

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/Hami23p/Learnify/internal/learning"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS learnify_users (
  position INTEGER PRIMARY KEY,
  role TEXT NOT NULL,
  username TEXT NOT NULL,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password TEXT NOT NULL,
  address TEXT NOT NULL,
  contact TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS learnify_courses (
  position INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  instructor TEXT NOT NULL
);
`

// SQLiteStore is the single-file database variant of PostgresStore.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// tables exist.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadUsers(ctx context.Context) ([]*learning.User, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT role, username, name, email, password, address, contact
		 FROM learnify_users ORDER BY position LIMIT ?`, learning.MaxUsers)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*learning.User
	for rows.Next() {
		var role string
		var p learning.Profile
		if err := rows.Scan(&role, &p.Username, &p.Name, &p.Email, &p.Password, &p.Address, &p.Contact); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		r, _ := learning.ParseRole(role)
		u, ok := learning.NewUser(r, p)
		if !ok {
			slog.Warn("skipping user row with unknown role", "username", p.Username, "role", role)
			continue
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users, nil
}

func (s *SQLiteStore) SaveUsers(ctx context.Context, users []*learning.User) error {
	return s.replace(ctx, "learnify_users", userColumns, len(users), func(i int) []any {
		u := users[i]
		return []any{i, string(u.Role), u.Username, u.Name, u.Email, u.Password, u.Address, u.Contact}
	})
}

func (s *SQLiteStore) LoadCourses(ctx context.Context) ([]*learning.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, description, instructor
		 FROM learnify_courses ORDER BY position LIMIT ?`, learning.MaxCourses)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []*learning.Course
	for rows.Next() {
		var title, desc, instructor string
		if err := rows.Scan(&title, &desc, &instructor); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, learning.NewCourse("", title, desc, instructor))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	if len(courses) == 0 {
		return nil, ErrNotFound
	}
	return courses, nil
}

func (s *SQLiteStore) SaveCourses(ctx context.Context, courses []*learning.Course) error {
	return s.replace(ctx, "learnify_courses", courseColumns, len(courses), func(i int) []any {
		c := courses[i]
		return []any{i, c.Title, c.Description, c.InstructorUsername}
	})
}

func (s *SQLiteStore) replace(ctx context.Context, table string, columns []string, n int, row func(i int) []any) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s save: %w", table, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO "+table+" ("+strings.Join(columns, ",")+") VALUES ("+placeholders+")")
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := range n {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s save: %w", table, err)
	}
	return nil
}
