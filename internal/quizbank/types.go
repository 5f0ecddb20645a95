package quizbank

import "github.com/Hami23p/Learnify/internal/learning"

// Bank is one quiz-bank document: quizzes for a course, matched by title.
type Bank struct {
	Path    string    `yaml:"-"`
	Course  string    `yaml:"course"`
	Quizzes []QuizDef `yaml:"quizzes"`
}

// QuizDef is a quiz as written in a bank file.
type QuizDef struct {
	Title        string        `yaml:"title"`
	QuestionDefs []QuestionDef `yaml:"questions"`
}

// QuestionDef holds a question. Correct is the 1-based option number.
type QuestionDef struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// Questions converts the definitions to zero-based learning questions.
func (q QuizDef) Questions() []learning.Question {
	out := make([]learning.Question, len(q.QuestionDefs))
	for i, d := range q.QuestionDefs {
		out[i] = learning.Question{Text: d.Text, Options: d.Options, Correct: d.Correct - 1}
	}
	return out
}
