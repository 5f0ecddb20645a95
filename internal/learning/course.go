package learning

// Course owns its quizzes. InstructorUsername is a plain value and may name a
// user that no longer exists. ID is assigned in-process and never persisted.
type Course struct {
	ID                 string
	Title              string
	Description        string
	InstructorUsername string
	quizzes            []*Quiz
}

// NewCourse creates a course without quizzes.
func NewCourse(id, title, description, instructor string) *Course {
	return &Course{
		ID:                 id,
		Title:              title,
		Description:        description,
		InstructorUsername: instructor,
	}
}

// AddQuiz appends quiz and reports whether it was kept. Past MaxQuizzes the
// quiz is dropped.
func (c *Course) AddQuiz(quiz *Quiz) bool {
	if len(c.quizzes) >= MaxQuizzes {
		return false
	}
	c.quizzes = append(c.quizzes, quiz)
	return true
}

// Quiz returns the quiz at index, or nil when index is out of range.
func (c *Course) Quiz(index int) *Quiz {
	if index < 0 || index >= len(c.quizzes) {
		return nil
	}
	return c.quizzes[index]
}

func (c *Course) QuizCount() int { return len(c.quizzes) }

// QuizTitles lists quiz titles in position order.
func (c *Course) QuizTitles() []string {
	titles := make([]string, len(c.quizzes))
	for i, q := range c.quizzes {
		titles[i] = q.Title
	}
	return titles
}
