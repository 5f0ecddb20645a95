// Package session replays scripted menu sessions against a directory.
package session

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Hami23p/Learnify/internal/quizbank"
)

// Step operations.
const (
	OpRegister      = "register"
	OpLogin         = "login"
	OpLogout        = "logout"
	OpCourses       = "courses"
	OpTeaching      = "teaching"
	OpEnrolled      = "enrolled"
	OpProfile       = "profile"
	OpCreateCourse  = "create_course"
	OpEnroll        = "enroll"
	OpCreateQuiz    = "create_quiz"
	OpTakeQuiz      = "take_quiz"
	OpProgress      = "progress"
	OpRemoveStudent = "remove_student"
	OpImportQuizzes = "import_quizzes"
)

//go:embed schema.json
var schemaJSON string

var scriptSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("session: bad embedded schema: %v", err))
	}
	return s
}()

// Script is an ordered list of steps run as one session.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one menu action. Selection and Quiz are 1-based positions as a
// user would type them; Course names a course by title instead.
type Step struct {
	Op string `yaml:"op"`

	Role     string `yaml:"role"`
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Address  string `yaml:"address"`
	Contact  string `yaml:"contact"`

	Identifier string `yaml:"identifier"`

	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Instructor  string `yaml:"instructor"`

	Course    string                 `yaml:"course"`
	Selection int                    `yaml:"selection"`
	Quiz      int                    `yaml:"quiz"`
	Questions []quizbank.QuestionDef `yaml:"questions"`
	Answers   []int                  `yaml:"answers"`

	Path string `yaml:"path"`
	XLSX string `yaml:"xlsx"`
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates data against the script schema and decodes it.
func Parse(data []byte) (Script, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Script{}, fmt.Errorf("parsing yaml: %w", err)
	}
	res, err := scriptSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Script{}, fmt.Errorf("validating script: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return Script{}, fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("decoding script: %w", err)
	}
	return s, nil
}
