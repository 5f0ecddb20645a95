package learning_test

import (
	"testing"

	"github.com/Hami23p/Learnify/internal/learning"
)

func TestQuestion_CheckAnswer(t *testing.T) {
	q := learning.NewQuestion("2+2?", []string{"3", "4", "5"}, 1)

	tests := []struct {
		answer int
		want   bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, false},
		{4, false},
		{-1, false},
		{99, false},
	}

	for _, tt := range tests {
		if got := q.CheckAnswer(tt.answer); got != tt.want {
			t.Errorf("CheckAnswer(%d) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestNewQuestion_DropsExtraOptions(t *testing.T) {
	q := learning.NewQuestion("pick", []string{"a", "b", "c", "d", "e", "f"}, 0)
	if len(q.Options) != learning.MaxOptions {
		t.Errorf("len(Options) = %d, want %d", len(q.Options), learning.MaxOptions)
	}
	if q.Options[4] != "e" {
		t.Errorf("Options[4] = %q, want e", q.Options[4])
	}
}

func TestQuiz_Take(t *testing.T) {
	quiz := threeQuestionQuiz()

	tests := []struct {
		name    string
		answers []int
		want    learning.Score
	}{
		{"two of three", []int{1, 2, 1}, learning.Score{Correct: 2, Total: 3, Percent: 66}},
		{"all correct", []int{1, 2, 3}, learning.Score{Correct: 3, Total: 3, Percent: 100}},
		{"one correct", []int{1, 1, 1}, learning.Score{Correct: 1, Total: 3, Percent: 33}},
		{"missing answers", []int{1}, learning.Score{Correct: 1, Total: 3, Percent: 33}},
		{"no answers", nil, learning.Score{Correct: 0, Total: 3, Percent: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quiz.Take(tt.answers); got != tt.want {
				t.Errorf("Take(%v) = %+v, want %+v", tt.answers, got, tt.want)
			}
		})
	}
}

func TestQuiz_Take_Empty(t *testing.T) {
	quiz := learning.NewQuiz("empty")
	got := quiz.Take([]int{1, 2})
	if got.Percent != 0 || got.Total != 0 || got.Correct != 0 {
		t.Errorf("Take() on empty quiz = %+v, want zero score", got)
	}
}

func TestQuiz_AddQuestion_Capacity(t *testing.T) {
	quiz := learning.NewQuiz("long")
	for i := 0; i < learning.MaxQuestions; i++ {
		if !quiz.AddQuestion(learning.NewQuestion("q", []string{"a"}, 0)) {
			t.Fatalf("AddQuestion() #%d rejected below capacity", i+1)
		}
	}
	if quiz.AddQuestion(learning.NewQuestion("eleventh", []string{"a"}, 0)) {
		t.Error("AddQuestion() should drop the 11th question")
	}
	if quiz.QuestionCount() != learning.MaxQuestions {
		t.Errorf("QuestionCount() = %d, want %d", quiz.QuestionCount(), learning.MaxQuestions)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{2, 3, 66},
		{1, 3, 33},
		{3, 3, 100},
		{0, 0, 0},
		{5, 0, 0},
		{1, 7, 14},
	}
	for _, tt := range tests {
		if got := learning.Percentage(tt.part, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}

func threeQuestionQuiz() *learning.Quiz {
	quiz := learning.NewQuiz("Basics")
	quiz.AddQuestion(learning.NewQuestion("first", []string{"yes", "no"}, 0))
	quiz.AddQuestion(learning.NewQuestion("second", []string{"yes", "no"}, 1))
	quiz.AddQuestion(learning.NewQuestion("third", []string{"a", "b", "c"}, 2))
	return quiz
}
