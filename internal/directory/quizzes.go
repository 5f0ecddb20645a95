package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Hami23p/Learnify/internal/audit"
	"github.com/Hami23p/Learnify/internal/learning"
	"github.com/Hami23p/Learnify/internal/rbac"
	"github.com/Hami23p/Learnify/internal/validate"
)

// QuizResult is the outcome of one attempt.
type QuizResult struct {
	learning.Score
	Course  string
	Quiz    string
	Best    int
	NewBest bool
}

// Progress is a student's view of every enrollment row.
type Progress struct {
	Student string
	Courses []CourseProgress
}

// CourseProgress describes one enrollment row. Percent is the share of the
// course's quizzes completed at least once.
type CourseProgress struct {
	Slot      int
	CourseID  string
	Title     string
	Completed int
	Percent   int
	Quizzes   []QuizProgress
}

type QuizProgress struct {
	Index     int
	Title     string
	Completed bool
	Best      int
}

// CreateQuiz appends a quiz to a course actor teaches and returns its
// position. Options past MaxOptions and questions past MaxQuestions are
// dropped. When the course already holds MaxQuizzes the quiz is dropped and
// the position is -1.
func (d *Directory) CreateQuiz(ctx context.Context, actor *learning.User, courseID, title string, questions []learning.Question) (int, error) {
	if err := d.authorize(actor, rbac.QuizCreate); err != nil {
		return -1, err
	}
	course, ok := d.Course(courseID)
	if !ok {
		return -1, &Error{Kind: KindNotFound, Field: "course", Err: ErrCourseNotFound}
	}
	if !actor.Instructor.Teaches(courseID) {
		return -1, &Error{Kind: KindForbidden, Field: "course", Err: ErrCourseNotTaught}
	}
	if err := validate.SingleLine(title); err != nil {
		return -1, fieldError("title", err)
	}
	if len(questions) > learning.MaxQuestions {
		slog.Warn("dropping questions past limit", "quiz", title, "given", len(questions))
		questions = questions[:learning.MaxQuestions]
	}

	quiz := learning.NewQuiz(title)
	for i, in := range questions {
		q := learning.NewQuestion(in.Text, in.Options, in.Correct)
		if err := checkQuestion(q); err != nil {
			return -1, &Error{Kind: KindValidation, Field: fmt.Sprintf("question %d", i+1), Err: err}
		}
		quiz.AddQuestion(q)
	}

	if !course.AddQuiz(quiz) {
		slog.Warn("quiz limit reached, quiz dropped", "course", course.Title, "quiz", title)
		return -1, nil
	}
	pos := course.QuizCount() - 1

	slog.Info("quiz created", "course", course.Title, "quiz", title, "questions", quiz.QuestionCount())
	d.emit(ctx, audit.Event{
		Type:   audit.QuizCreated,
		Actor:  actor.Username,
		Target: course.Title,
		Data:   map[string]any{"quiz": title, "questions": quiz.QuestionCount()},
	})
	return pos, nil
}

func checkQuestion(q learning.Question) error {
	if err := validate.SingleLine(q.Text); err != nil {
		return err
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("%w: no options", ErrInvalidQuestion)
	}
	for _, opt := range q.Options {
		if err := validate.SingleLine(opt); err != nil {
			return err
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: correct option %d out of range 1-%d", ErrInvalidQuestion, q.Correct+1, len(q.Options))
	}
	return nil
}

// TakeQuiz scores answers (1-based option numbers) against the quiz at
// quizIndex of the course and records the result at the first enrollment
// row for that course, keeping the best score.
func (d *Directory) TakeQuiz(ctx context.Context, actor *learning.User, courseID string, quizIndex int, answers []int) (QuizResult, error) {
	if err := d.authorize(actor, rbac.QuizTake); err != nil {
		return QuizResult{}, err
	}
	slot, enrolled := actor.Student.Slot(courseID)
	course, ok := d.Course(courseID)
	if !enrolled || !ok {
		return QuizResult{}, &Error{Kind: KindNotFound, Field: "course", Err: ErrInvalidQuizSelection}
	}
	quiz := course.Quiz(quizIndex)
	if quiz == nil {
		return QuizResult{}, &Error{Kind: KindNotFound, Field: "quiz", Err: ErrInvalidQuizSelection}
	}

	score := quiz.Take(answers)
	newBest := actor.Student.Record(slot, quizIndex, score.Percent)
	result := QuizResult{
		Score:   score,
		Course:  course.Title,
		Quiz:    quiz.Title,
		Best:    actor.Student.Cell(slot, quizIndex).Best,
		NewBest: newBest,
	}

	d.emit(ctx, audit.Event{
		Type:   audit.QuizTaken,
		Actor:  actor.Username,
		Target: course.Title,
		Data:   map[string]any{"quiz": quiz.Title, "score": score.Percent},
	})
	return result, nil
}

// ViewProgress reports completion per enrollment row.
func (d *Directory) ViewProgress(actor *learning.User) (Progress, error) {
	if err := d.authorize(actor, rbac.ProgressView); err != nil {
		return Progress{}, err
	}
	p := Progress{Student: actor.Username}
	for slot, id := range actor.Student.Enrolled() {
		course, ok := d.Course(id)
		if !ok {
			continue
		}
		cp := CourseProgress{Slot: slot, CourseID: id, Title: course.Title}
		for i, title := range course.QuizTitles() {
			cell := actor.Student.Cell(slot, i)
			if cell.Completed {
				cp.Completed++
			}
			cp.Quizzes = append(cp.Quizzes, QuizProgress{
				Index:     i,
				Title:     title,
				Completed: cell.Completed,
				Best:      cell.Best,
			})
		}
		cp.Percent = learning.Percentage(cp.Completed, course.QuizCount())
		p.Courses = append(p.Courses, cp)
	}
	return p, nil
}
