// Package codec reads and writes the line-oriented users and courses files.
//
// Users file: a count line, then seven lines per user (role, username, name,
// email, password, address, contact). Courses file: a count line, then three
// lines per course (title, description, instructor username). Fields are
// written verbatim; a value containing a newline would misalign every record
// after it, so callers must reject such values before they reach the codec.
// Quizzes, teaching lists, enrollments and progress are not part of either
// format.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Hami23p/Learnify/internal/learning"
)

// ErrTruncated means the stream ended before the number of records its count
// line announced.
var ErrTruncated = errors.New("truncated record stream")

const (
	userFields   = 7
	courseFields = 3
)

// EncodeUsers writes users in order.
func EncodeUsers(w io.Writer, users []*learning.User) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(users))
	for _, u := range users {
		writeLines(bw,
			string(u.Role),
			u.Username,
			u.Name,
			u.Email,
			u.Password,
			u.Address,
			u.Contact,
		)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing users: %w", err)
	}
	return nil
}

// DecodeUsers reads at most learning.MaxUsers records. Records with an
// unknown role tag are skipped. Instructor and student state starts empty.
func DecodeUsers(r io.Reader) ([]*learning.User, error) {
	lr := newLineReader(r)
	n := lr.count()

	users := make([]*learning.User, 0, min(n, learning.MaxUsers))
	for i := 0; i < n && i < learning.MaxUsers; i++ {
		f, err := lr.record(userFields)
		if err != nil {
			return nil, fmt.Errorf("reading user %d of %d: %w", i+1, n, err)
		}
		role, _ := learning.ParseRole(f[0])
		u, ok := learning.NewUser(role, learning.Profile{
			Username: f[1],
			Name:     f[2],
			Email:    f[3],
			Password: f[4],
			Address:  f[5],
			Contact:  f[6],
		})
		if !ok {
			slog.Warn("skipping user record with unknown role", "position", i+1, "role", f[0])
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// EncodeCourses writes courses in order. Quizzes are not written.
func EncodeCourses(w io.Writer, courses []*learning.Course) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(courses))
	for _, c := range courses {
		writeLines(bw, c.Title, c.Description, c.InstructorUsername)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing courses: %w", err)
	}
	return nil
}

// DecodeCourses reads at most learning.MaxCourses records. Decoded courses
// have no ID and no quizzes.
func DecodeCourses(r io.Reader) ([]*learning.Course, error) {
	lr := newLineReader(r)
	n := lr.count()

	courses := make([]*learning.Course, 0, min(n, learning.MaxCourses))
	for i := 0; i < n && i < learning.MaxCourses; i++ {
		f, err := lr.record(courseFields)
		if err != nil {
			return nil, fmt.Errorf("reading course %d of %d: %w", i+1, n, err)
		}
		courses = append(courses, learning.NewCourse("", f[0], f[1], f[2]))
	}
	return courses, nil
}

func writeLines(w *bufio.Writer, lines ...string) {
	for _, l := range lines {
		w.WriteString(l)
		w.WriteByte('\n')
	}
}

type lineReader struct {
	br *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// count parses the leading integer of the first line. Anything unparsable or
// negative counts as zero records.
func (lr *lineReader) count() int {
	line, err := lr.line()
	if err != nil {
		return 0
	}
	line = strings.TrimLeft(line, " \t\r\v\f")
	end := 0
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(line[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (lr *lineReader) record(fields int) ([]string, error) {
	out := make([]string, fields)
	for i := range out {
		line, err := lr.line()
		if err != nil {
			return nil, err
		}
		out[i] = line
	}
	return out, nil
}

// line returns the next line without its '\n'. A final line without a
// terminator is still returned.
func (lr *lineReader) line() (string, error) {
	s, err := lr.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return s, nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrTruncated
		}
		return "", err
	}
	return strings.TrimSuffix(s, "\n"), nil
}
