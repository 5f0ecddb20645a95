// Package quizbank loads quiz definitions from YAML files and imports them
// into courses an instructor teaches.
package quizbank

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Hami23p/Learnify/internal/learning"
)

//go:embed schema.json
var schemaJSON string

var bankSchema = mustSchema(schemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("quizbank: bad embedded schema: %v", err))
	}
	return s
}

// Loader loads and caches quiz banks from a directory tree.
type Loader struct {
	rootDir string
	banks   []Bank
	mu      sync.RWMutex
}

// NewLoader creates a loader and loads every bank under rootDir.
func NewLoader(rootDir string) (*Loader, error) {
	l := &Loader{rootDir: rootDir}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload walks rootDir again and replaces the cached banks.
func (l *Loader) Reload() error {
	var banks []Bank
	err := filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		bank, ok, err := loadBank(path)
		if err != nil {
			return err
		}
		if ok {
			banks = append(banks, bank)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("loading quiz bank: %w", err)
	}

	l.mu.Lock()
	l.banks = banks
	l.mu.Unlock()

	slog.Info("quiz bank loaded", "dir", l.rootDir, "banks", len(banks))
	return nil
}

// Banks returns the loaded banks in walk order.
func (l *Loader) Banks() []Bank {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Bank(nil), l.banks...)
}

// ForCourse returns the banks written for the course titled title.
func (l *Loader) ForCourse(title string) []Bank {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Bank
	for _, b := range l.banks {
		if b.Course == title {
			out = append(out, b)
		}
	}
	return out
}

func loadBank(path string) (Bank, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, false, err
	}
	bank, err := Parse(data)
	if err != nil {
		slog.Warn("skipping invalid quiz bank", "path", path, "error", err)
		return Bank{}, false, nil
	}
	bank.Path = path
	return bank, true, nil
}

// Parse validates data against the bank schema and decodes it.
func Parse(data []byte) (Bank, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Bank{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := Validate(doc); err != nil {
		return Bank{}, err
	}
	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return Bank{}, fmt.Errorf("decoding bank: %w", err)
	}
	return bank, nil
}

// Validate checks a decoded YAML document against the bank schema.
func Validate(doc any) error {
	res, err := bankSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating bank: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// Creator is the part of the directory an import needs.
type Creator interface {
	TeachingCourses(actor *learning.User) ([]*learning.Course, error)
	CreateQuiz(ctx context.Context, actor *learning.User, courseID, title string, questions []learning.Question) (int, error)
}

// Import creates the quizzes of banks on the courses actor teaches and
// returns how many were added. Banks naming a course actor does not teach
// and quizzes the directory rejects are skipped with a warning.
func Import(ctx context.Context, creator Creator, actor *learning.User, banks []Bank) (int, error) {
	teaching, err := creator.TeachingCourses(actor)
	if err != nil {
		return 0, err
	}
	created := 0
	for _, bank := range banks {
		course := findCourse(teaching, bank.Course)
		if course == nil {
			slog.Warn("quiz bank course not taught by actor", "course", bank.Course, "path", bank.Path)
			continue
		}
		for _, def := range bank.Quizzes {
			if err := ctx.Err(); err != nil {
				return created, err
			}
			pos, err := creator.CreateQuiz(ctx, actor, course.ID, def.Title, def.Questions())
			if err != nil {
				slog.Warn("skipping quiz", "course", course.Title, "quiz", def.Title, "error", err)
				continue
			}
			if pos >= 0 {
				created++
			}
		}
	}
	return created, nil
}

func findCourse(courses []*learning.Course, title string) *learning.Course {
	for _, c := range courses {
		if c.Title == title {
			return c
		}
	}
	return nil
}
