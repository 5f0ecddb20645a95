package learning

// Question is a multiple-choice question. Correct is zero-based.
type Question struct {
	Text    string
	Options []string
	Correct int
}

// NewQuestion keeps at most MaxOptions options; extra options are dropped.
func NewQuestion(text string, options []string, correct int) Question {
	if len(options) > MaxOptions {
		options = options[:MaxOptions]
	}
	return Question{
		Text:    text,
		Options: append([]string(nil), options...),
		Correct: correct,
	}
}

// CheckAnswer reports whether the one-based answer picks the correct option.
func (q Question) CheckAnswer(answer int) bool {
	return answer-1 == q.Correct
}

// Score is the outcome of one quiz attempt.
type Score struct {
	Correct int
	Total   int
	Percent int
}

// Quiz is an ordered list of at most MaxQuestions questions.
type Quiz struct {
	Title     string
	questions []Question
}

// NewQuiz creates an empty quiz.
func NewQuiz(title string) *Quiz {
	return &Quiz{Title: title}
}

// AddQuestion appends q and reports whether it was kept. Past MaxQuestions
// the question is dropped.
func (z *Quiz) AddQuestion(q Question) bool {
	if len(z.questions) >= MaxQuestions {
		return false
	}
	z.questions = append(z.questions, q)
	return true
}

// Questions returns a copy of the quiz questions in order.
func (z *Quiz) Questions() []Question {
	return append([]Question(nil), z.questions...)
}

func (z *Quiz) QuestionCount() int { return len(z.questions) }

// Take scores one-based answers against the questions in order. A missing
// answer counts as wrong. The quiz itself is not modified.
func (z *Quiz) Take(answers []int) Score {
	s := Score{Total: len(z.questions)}
	for i, q := range z.questions {
		if i < len(answers) && q.CheckAnswer(answers[i]) {
			s.Correct++
		}
	}
	s.Percent = Percentage(s.Correct, s.Total)
	return s
}

// Percentage is floor(part*100/total), or 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}
