package persist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hami23p/Learnify/internal/learning"
)

const dbTimeout = 5 * time.Second

var (
	userColumns   = []string{"position", "role", "username", "name", "email", "password", "address", "contact"}
	courseColumns = []string{"position", "title", "description", "instructor"}
)

// PostgresStore keeps one row per record in learnify_users and
// learnify_courses. A save replaces the whole table in one transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over pool. The schema must already exist;
// database.New creates it.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) LoadUsers(ctx context.Context) ([]*learning.User, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT role, username, name, email, password, address, contact
		 FROM learnify_users
		 ORDER BY position ASC
		 LIMIT $1`,
		learning.MaxUsers,
	)
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

func (s *PostgresStore) SaveUsers(ctx context.Context, users []*learning.User) error {
	return s.replace(ctx, "learnify_users", userColumns, len(users), func(i int) []any {
		u := users[i]
		return []any{i, string(u.Role), u.Username, u.Name, u.Email, u.Password, u.Address, u.Contact}
	})
}

func (s *PostgresStore) LoadCourses(ctx context.Context) ([]*learning.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT title, description, instructor
		 FROM learnify_courses
		 ORDER BY position ASC
		 LIMIT $1`,
		learning.MaxCourses,
	)
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

func (s *PostgresStore) SaveCourses(ctx context.Context, courses []*learning.Course) error {
	return s.replace(ctx, "learnify_courses", courseColumns, len(courses), func(i int) []any {
		c := courses[i]
		return []any{i, c.Title, c.Description, c.InstructorUsername}
	})
}

func (s *PostgresStore) replace(ctx context.Context, table string, columns []string, n int, row func(i int) []any) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s save: %w", table, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM "+pgx.Identifier{table}.Sanitize()); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns,
		pgx.CopyFromSlice(n, func(i int) ([]any, error) {
			return row(i), nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy %s: %w", table, err)
	}
	if int(copied) != n {
		return fmt.Errorf("copy %s: wrote %d of %d rows", table, copied, n)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s save: %w", table, err)
	}
	return nil
}
