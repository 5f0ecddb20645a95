package quizbank_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hami23p/Learnify/internal/directory"
	"github.com/Hami23p/Learnify/internal/learning"
	"github.com/Hami23p/Learnify/internal/persist"
	"github.com/Hami23p/Learnify/internal/quizbank"
)

const goBasics = `
course: Go Basics
quizzes:
  - title: Syntax
    questions:
      - text: Keyword for loops?
        options: [while, for, loop]
        correct: 2
      - text: Package entry point?
        options: [main, init]
        correct: 1
  - title: Types
    questions:
      - text: Zero value of int?
        options: ["0", "nil"]
        correct: 1
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setupBank(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go", "basics.yaml"), goBasics)
	writeFile(t, filepath.Join(dir, "go", "notes.md"), "# not a bank")
	writeFile(t, filepath.Join(dir, "broken.yml"), "course: Go Basics\nquizzes: nope\n")
	return dir
}

func TestLoader_LoadBanks(t *testing.T) {
	loader, err := quizbank.NewLoader(setupBank(t))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	banks := loader.Banks()
	if len(banks) != 1 {
		t.Fatalf("Banks() = %d, want 1 (invalid file should be skipped)", len(banks))
	}
	b := banks[0]
	if b.Course != "Go Basics" || len(b.Quizzes) != 2 || !strings.HasSuffix(b.Path, "basics.yaml") {
		t.Fatalf("bank = %+v", b)
	}
	qs := b.Quizzes[0].Questions()
	if qs[0].Correct != 1 || !qs[0].CheckAnswer(2) {
		t.Fatalf("question = %+v, want zero-based correct 1", qs[0])
	}
	if len(loader.ForCourse("Go Basics")) != 1 || len(loader.ForCourse("Rust")) != 0 {
		t.Fatal("ForCourse() mismatch")
	}
}

func TestLoader_EmptyDir(t *testing.T) {
	loader, err := quizbank.NewLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	if len(loader.Banks()) != 0 {
		t.Errorf("Banks() = %d, want 0 for empty dir", len(loader.Banks()))
	}
}

func TestLoader_Reload(t *testing.T) {
	dir := t.TempDir()
	loader, err := quizbank.NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	writeFile(t, filepath.Join(dir, "late.yaml"), goBasics)
	if err := loader.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if len(loader.Banks()) != 1 {
		t.Fatalf("Banks() after reload = %d, want 1", len(loader.Banks()))
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"missing course", "quizzes: []\n"},
		{"no quizzes", "course: Go\nquizzes: []\n"},
		{"zero correct", "course: Go\nquizzes:\n  - title: Q\n    questions:\n      - {text: a, options: [x], correct: 0}\n"},
		{"string correct", "course: Go\nquizzes:\n  - title: Q\n    questions:\n      - {text: a, options: [x], correct: one}\n"},
		{"no options", "course: Go\nquizzes:\n  - title: Q\n    questions:\n      - {text: a, options: [], correct: 1}\n"},
		{"unknown field", "course: Go\nlevel: 3\nquizzes:\n  - title: Q\n    questions: []\n"},
		{"bad yaml", "course: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := quizbank.Parse([]byte(tt.doc)); err == nil {
				t.Fatal("Parse() should fail")
			}
		})
	}
}

func TestImport(t *testing.T) {
	ctx := t.Context()
	d := directory.Open(ctx, persist.NewMemoryStore())
	reg := func(role, username string) *learning.User {
		u, err := d.Register(ctx, directory.RegisterInput{
			Role: role, Username: username, Name: "Some One", Email: username + "@example.com",
			Password: "Passw0rd!", Address: "Here", Contact: "555-0100",
		})
		if err != nil {
			t.Fatalf("Register(%s) error = %v", username, err)
		}
		return u
	}
	admin := reg("Admin", "root")
	inst := reg("Instructor", "bob")
	student := reg("Student", "alice")
	course, err := d.CreateCourse(ctx, admin, "Go Basics", "Intro", "bob")
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	bad, err := quizbank.Parse([]byte("course: Go Basics\nquizzes:\n  - title: Broken\n    questions:\n      - {text: a, options: [x], correct: 4}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	good, err := quizbank.Parse([]byte(goBasics))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	other := quizbank.Bank{Course: "Rust", Quizzes: good.Quizzes}

	n, err := quizbank.Import(ctx, d, inst, []quizbank.Bank{good, bad, other})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if n != 2 || course.QuizCount() != 2 {
		t.Fatalf("Import() = %d, quizzes = %d; want 2", n, course.QuizCount())
	}
	if got := course.QuizTitles(); got[0] != "Syntax" || got[1] != "Types" {
		t.Fatalf("QuizTitles() = %v", got)
	}

	if _, err := quizbank.Import(ctx, d, student, []quizbank.Bank{good}); err == nil {
		t.Fatal("Import() as student should fail")
	}
}
