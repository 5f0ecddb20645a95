package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/Hami23p/Learnify/internal/directory"
	"github.com/Hami23p/Learnify/internal/learning"
	"github.com/Hami23p/Learnify/internal/quizbank"
	"github.com/Hami23p/Learnify/internal/report"
)

var (
	ErrNotLoggedIn   = errors.New("no user logged in")
	ErrUnknownCourse = errors.New("unknown course")
	ErrNoQuizBank    = errors.New("no quiz bank configured")
	ErrUnknownOp     = errors.New("unknown operation")
)

// Config holds the runner's optional collaborators.
type Config struct {
	Out       io.Writer
	Lang      language.Tag
	ReportDir string
	Bank      *quizbank.Loader
}

// Runner executes steps as the currently logged-in user.
type Runner struct {
	dir       *directory.Directory
	out       io.Writer
	lang      language.Tag
	reportDir string
	bank      *quizbank.Loader
	current   *learning.User
}

// Outcome records the result of one step. Err is nil on success.
type Outcome struct {
	Index int
	Op    string
	Err   error
}

// OK reports whether the step succeeded, treating skipped saves as success.
func (o Outcome) OK() bool {
	return o.Err == nil || directory.IsWarning(o.Err)
}

// NewRunner creates a runner over dir with nobody logged in.
func NewRunner(dir *directory.Directory, cfg Config) *Runner {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Lang == language.Und {
		cfg.Lang = language.English
	}
	return &Runner{
		dir:       dir,
		out:       cfg.Out,
		lang:      cfg.Lang,
		reportDir: cfg.ReportDir,
		bank:      cfg.Bank,
	}
}

// Current returns the logged-in user, or nil.
func (r *Runner) Current() *learning.User { return r.current }

// Run executes every step in order. A failed step does not stop the
// script; a cancelled context does, before the next step starts.
func (r *Runner) Run(ctx context.Context, s Script) []Outcome {
	outcomes := make([]Outcome, 0, len(s.Steps))
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			slog.Warn("session interrupted", "step", i+1)
			outcomes = append(outcomes, Outcome{Index: i, Op: step.Op, Err: err})
			break
		}
		err := r.Step(ctx, step)
		if err != nil {
			slog.Warn("step failed", "step", i+1, "op", step.Op, "error", err)
		} else {
			slog.Debug("step done", "step", i+1, "op", step.Op)
		}
		outcomes = append(outcomes, Outcome{Index: i, Op: step.Op, Err: err})
	}
	return outcomes
}

// Step executes a single step.
func (r *Runner) Step(ctx context.Context, s Step) error {
	switch s.Op {
	case OpRegister:
		_, err := r.dir.Register(ctx, directory.RegisterInput{
			Role:     s.Role,
			Username: s.Username,
			Name:     s.Name,
			Email:    s.Email,
			Password: s.Password,
			Address:  s.Address,
			Contact:  s.Contact,
		})
		return err
	case OpLogin:
		u, err := r.dir.Login(ctx, s.Identifier, s.Password)
		if err != nil {
			return err
		}
		r.current = u
		slog.Info("logged in", "username", u.Username, "role", u.Role)
		return nil
	case OpLogout:
		r.current = nil
		return nil
	case OpCourses:
		return report.WriteCourses(r.out, r.dir.Courses(), r.lang)
	}

	actor := r.current
	if actor == nil {
		return ErrNotLoggedIn
	}
	switch s.Op {
	case OpTeaching:
		courses, err := r.dir.TeachingCourses(actor)
		if err != nil {
			return err
		}
		return report.WriteCourses(r.out, courses, r.lang)
	case OpEnrolled:
		courses, err := r.dir.EnrolledCourses(actor)
		if err != nil {
			return err
		}
		return report.WriteCourses(r.out, courses, r.lang)
	case OpProfile:
		return report.WriteProfile(r.out, r.dir.Profile(actor), r.lang)
	case OpCreateCourse:
		_, err := r.dir.CreateCourse(ctx, actor, s.Title, s.Description, s.Instructor)
		return err
	case OpEnroll:
		return r.enroll(ctx, actor, s)
	case OpCreateQuiz:
		return r.createQuiz(ctx, actor, s)
	case OpTakeQuiz:
		return r.takeQuiz(ctx, actor, s)
	case OpProgress:
		return r.progress(actor, s)
	case OpRemoveStudent:
		return r.dir.RemoveStudent(ctx, actor, s.Username)
	case OpImportQuizzes:
		return r.importQuizzes(ctx, actor, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
}

func (r *Runner) enroll(ctx context.Context, actor *learning.User, s Step) error {
	selection := s.Selection - 1
	if s.Course != "" {
		_, idx, ok := r.dir.FindCourse(s.Course)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCourse, s.Course)
		}
		selection = idx
	}
	_, err := r.dir.EnrollCourse(ctx, actor, selection)
	return err
}

func (r *Runner) createQuiz(ctx context.Context, actor *learning.User, s Step) error {
	teaching, err := r.dir.TeachingCourses(actor)
	if err != nil {
		return err
	}
	course, err := pick(teaching, s)
	if err != nil {
		return err
	}
	def := quizbank.QuizDef{Title: s.Title, QuestionDefs: s.Questions}
	_, err = r.dir.CreateQuiz(ctx, actor, course.ID, def.Title, def.Questions())
	return err
}

func (r *Runner) takeQuiz(ctx context.Context, actor *learning.User, s Step) error {
	enrolled, err := r.dir.EnrolledCourses(actor)
	if err != nil {
		return err
	}
	course, err := pick(enrolled, s)
	if err != nil {
		return err
	}
	res, err := r.dir.TakeQuiz(ctx, actor, course.ID, s.Quiz-1, s.Answers)
	if err != nil {
		return err
	}
	return report.WriteQuizResult(r.out, res, r.lang)
}

// pick selects from courses by title when s.Course is set, otherwise by
// 1-based selection.
func pick(courses []*learning.Course, s Step) (*learning.Course, error) {
	if s.Course != "" {
		for _, c := range courses {
			if c.Title == s.Course {
				return c, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownCourse, s.Course)
	}
	if s.Selection < 1 || s.Selection > len(courses) {
		return nil, &directory.Error{Kind: directory.KindNotFound, Field: "selection", Err: directory.ErrInvalidSelection}
	}
	return courses[s.Selection-1], nil
}

func (r *Runner) progress(actor *learning.User, s Step) error {
	p, err := r.dir.ViewProgress(actor)
	if err != nil {
		return err
	}
	if err := report.WriteText(r.out, p, r.lang); err != nil {
		return err
	}
	if s.XLSX == "" {
		return nil
	}
	path := filepath.Join(r.reportDir, filepath.Base(s.XLSX))
	if err := report.WriteXLSX(path, p); err != nil {
		return err
	}
	slog.Info("progress workbook written", "path", path)
	return nil
}

func (r *Runner) importQuizzes(ctx context.Context, actor *learning.User, s Step) error {
	bank := r.bank
	if s.Path != "" {
		loaded, err := quizbank.NewLoader(s.Path)
		if err != nil {
			return err
		}
		bank = loaded
	}
	if bank == nil {
		return ErrNoQuizBank
	}
	banks := bank.Banks()
	if s.Course != "" {
		banks = bank.ForCourse(s.Course)
	}
	n, err := quizbank.Import(ctx, r.dir, actor, banks)
	if err != nil {
		return err
	}
	slog.Info("quizzes imported", "username", actor.Username, "count", n)
	return nil
}
