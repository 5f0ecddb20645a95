package learning

// Profile holds the fields shared by every role.
type Profile struct {
	Username string
	Name     string
	Email    string
	Password string
	Address  string
	Contact  string
}

// User is a closed variant over the three roles. Exactly one of Instructor
// and Student is set when Role asks for it; both are nil for admins.
type User struct {
	Profile
	Role       Role
	Instructor *InstructorProfile
	Student    *StudentProfile
}

// NewUser builds the variant named by role. It returns false for an unknown
// role tag.
func NewUser(role Role, p Profile) (*User, bool) {
	u := &User{Profile: p, Role: role}
	switch role {
	case RoleAdmin:
	case RoleInstructor:
		u.Instructor = &InstructorProfile{}
	case RoleStudent:
		u.Student = &StudentProfile{}
	default:
		return nil, false
	}
	return u, true
}

// CheckPass reports whether password matches and identifier names this user
// by username or email. Both comparisons are exact.
func (u *User) CheckPass(identifier, password string) bool {
	return u.Password == password && (u.Username == identifier || u.Email == identifier)
}

// Is reports whether u has one of roles.
func (u *User) Is(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// InstructorProfile lists the IDs of the courses an instructor teaches. A nil
// profile behaves as an empty one that accepts nothing.
type InstructorProfile struct {
	teaching []string
}

// AddTeachingCourse appends courseID and reports whether it was kept.
func (p *InstructorProfile) AddTeachingCourse(courseID string) bool {
	if p == nil || len(p.teaching) >= MaxCourses {
		return false
	}
	p.teaching = append(p.teaching, courseID)
	return true
}

// Teaching returns the teaching course IDs in assignment order.
func (p *InstructorProfile) Teaching() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.teaching...)
}

// Teaches reports whether courseID is on the teaching list.
func (p *InstructorProfile) Teaches(courseID string) bool {
	if p == nil {
		return false
	}
	for _, id := range p.teaching {
		if id == courseID {
			return true
		}
	}
	return false
}

// ProgressCell is one entry of a student's progress table.
type ProgressCell struct {
	Completed bool
	Best      int
}

// StudentProfile holds enrollments and progress. Progress rows follow
// enrollment slots, so enrolling twice in one course yields two rows, and
// columns follow quiz positions within the course.
type StudentProfile struct {
	enrolled []string
	progress [MaxCourses][MaxQuizzes]ProgressCell
}

// Enroll appends courseID without a duplicate check and reports whether it
// was kept.
func (p *StudentProfile) Enroll(courseID string) bool {
	if p == nil || len(p.enrolled) >= MaxCourses {
		return false
	}
	p.enrolled = append(p.enrolled, courseID)
	return true
}

// Enrolled returns enrolled course IDs in slot order.
func (p *StudentProfile) Enrolled() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.enrolled...)
}

func (p *StudentProfile) EnrolledCount() int {
	if p == nil {
		return 0
	}
	return len(p.enrolled)
}

// Slot returns the first enrollment slot holding courseID.
func (p *StudentProfile) Slot(courseID string) (int, bool) {
	if p == nil {
		return -1, false
	}
	for i, id := range p.enrolled {
		if id == courseID {
			return i, true
		}
	}
	return -1, false
}

// Record marks the cell at (slot, quiz) completed and keeps the higher of the
// stored and the new percent. It reports whether percent became the new best.
func (p *StudentProfile) Record(slot, quiz, percent int) bool {
	if p == nil || slot < 0 || slot >= len(p.enrolled) || quiz < 0 || quiz >= MaxQuizzes {
		return false
	}
	cell := &p.progress[slot][quiz]
	cell.Completed = true
	if percent > cell.Best {
		cell.Best = percent
		return true
	}
	return false
}

// Cell returns the progress cell at (slot, quiz).
func (p *StudentProfile) Cell(slot, quiz int) ProgressCell {
	if p == nil || slot < 0 || slot >= MaxCourses || quiz < 0 || quiz >= MaxQuizzes {
		return ProgressCell{}
	}
	return p.progress[slot][quiz]
}
