// Package report renders a student's progress and profile as localized text
// or as an XLSX workbook.
package report

import (
	"bufio"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Hami23p/Learnify/internal/directory"
	"github.com/Hami23p/Learnify/internal/learning"
)

// Supported lists the languages with a full catalog. English is the fallback.
var Supported = []language.Tag{language.English, language.Malay}

var matcher = language.NewMatcher(Supported)

const (
	msgProgressHeader = "=== YOUR PROGRESS ===\n"
	msgNotEnrolled    = "You are not enrolled in any courses.\n"
	msgCourse         = "\nCourse: %s\n"
	msgQuizScore      = "  Quiz %d: %d%%\n"
	msgOverall        = "Overall progress: %d%% (%d/%d quizzes completed)\n"
	msgNoQuizzes      = "No quizzes available in this course.\n"

	msgProfileHeader = "=== PROFILE ===\n"
	msgUsername      = "Username: %s\n"
	msgName          = "Name: %s\n"
	msgEmail         = "Email: %s\n"
	msgAddress       = "Address: %s\n"
	msgContact       = "Contact: %s\n"
	msgRole          = "Role: %s\n"

	msgCoursesHeader = "=== ALL COURSES ===\n"
	msgNoCourses     = "No courses available.\n"
	msgCourseInfo    = "%d. \nCourse: %s\nDescription: %s\nInstructor: %s\n"

	msgScore    = "You scored %d/%d (%d%%)\n"
	msgNewBest  = "New high score saved!\n"
	msgKeptBest = "Your previous score was higher. High score remains.\n"
)

func init() {
	for key, msg := range map[string]string{
		msgProgressHeader: "=== KEMAJUAN ANDA ===\n",
		msgNotEnrolled:    "Anda tidak mendaftar dalam mana-mana kursus.\n",
		msgCourse:         "\nKursus: %s\n",
		msgQuizScore:      "  Kuiz %d: %d%%\n",
		msgOverall:        "Kemajuan keseluruhan: %d%% (%d/%d kuiz selesai)\n",
		msgNoQuizzes:      "Tiada kuiz tersedia dalam kursus ini.\n",
		msgProfileHeader:  "=== PROFIL ===\n",
		msgUsername:       "Nama pengguna: %s\n",
		msgName:           "Nama: %s\n",
		msgEmail:          "E-mel: %s\n",
		msgAddress:        "Alamat: %s\n",
		msgContact:        "Telefon: %s\n",
		msgRole:           "Peranan: %s\n",
		msgCoursesHeader:  "=== SEMUA KURSUS ===\n",
		msgNoCourses:      "Tiada kursus tersedia.\n",
		msgCourseInfo:     "%d. \nKursus: %s\nPenerangan: %s\nPengajar: %s\n",
		msgScore:          "Markah anda %d/%d (%d%%)\n",
		msgNewBest:        "Markah tertinggi baharu disimpan!\n",
		msgKeptBest:       "Markah terdahulu anda lebih tinggi. Markah tertinggi kekal.\n",
	} {
		if err := message.SetString(language.Malay, key, msg); err != nil {
			panic(err)
		}
	}
}

// Lang maps a BCP 47 string to the closest supported language.
func Lang(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// WriteText prints one block per enrollment row: completed quizzes with
// their best score, then the overall share of quizzes completed.
func WriteText(w io.Writer, p directory.Progress, lang language.Tag) error {
	bw := bufio.NewWriter(w)
	pr := message.NewPrinter(lang)

	pr.Fprintf(bw, msgProgressHeader)
	if len(p.Courses) == 0 {
		pr.Fprintf(bw, msgNotEnrolled)
		return bw.Flush()
	}
	for _, c := range p.Courses {
		pr.Fprintf(bw, msgCourse, c.Title)
		for _, q := range c.Quizzes {
			if q.Completed {
				pr.Fprintf(bw, msgQuizScore, q.Index+1, q.Best)
			}
		}
		if len(c.Quizzes) > 0 {
			pr.Fprintf(bw, msgOverall, c.Percent, c.Completed, len(c.Quizzes))
		} else {
			pr.Fprintf(bw, msgNoQuizzes)
		}
	}
	return bw.Flush()
}

// WriteProfile prints a profile view.
func WriteProfile(w io.Writer, v directory.ProfileView, lang language.Tag) error {
	bw := bufio.NewWriter(w)
	pr := message.NewPrinter(lang)
	pr.Fprintf(bw, msgProfileHeader)
	pr.Fprintf(bw, msgUsername, v.Username)
	pr.Fprintf(bw, msgName, v.Name)
	pr.Fprintf(bw, msgEmail, v.Email)
	pr.Fprintf(bw, msgAddress, v.Address)
	pr.Fprintf(bw, msgContact, v.Contact)
	pr.Fprintf(bw, msgRole, v.Role.Title())
	return bw.Flush()
}

// WriteCourses lists courses numbered from 1.
func WriteCourses(w io.Writer, courses []*learning.Course, lang language.Tag) error {
	bw := bufio.NewWriter(w)
	pr := message.NewPrinter(lang)
	if len(courses) == 0 {
		pr.Fprintf(bw, msgNoCourses)
		return bw.Flush()
	}
	pr.Fprintf(bw, msgCoursesHeader)
	for i, c := range courses {
		pr.Fprintf(bw, msgCourseInfo, i+1, c.Title, c.Description, c.InstructorUsername)
	}
	return bw.Flush()
}

// WriteQuizResult prints the score of one attempt and whether it became the
// stored best.
func WriteQuizResult(w io.Writer, res directory.QuizResult, lang language.Tag) error {
	bw := bufio.NewWriter(w)
	pr := message.NewPrinter(lang)
	pr.Fprintf(bw, msgScore, res.Correct, res.Total, res.Percent)
	if res.NewBest {
		pr.Fprintf(bw, msgNewBest)
	} else {
		pr.Fprintf(bw, msgKeptBest)
	}
	return bw.Flush()
}
