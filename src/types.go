package fichegen

// Config carries the process-level settings shared by the CLI and server.
type Config struct {
	APIKey     string
	OutputDir  string
	FontDir    string
	MaxRetries int
}

// Role selects which kind of fiche is generated.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// DefaultTocPages is how many leading syllabus pages are scanned for the
// table of contents.
const DefaultTocPages = 5

// FicheRequest describes one fiche to generate. LessonText is the extracted
// syllabus material; when empty the free-topic prompt is used instead.
type FicheRequest struct {
	Role       Role
	Topic      string
	ClassLevel string
	Subject    string
	Country    string
	LessonText string
}

// Fiche is a generated worksheet: the request it answers, the markdown
// content produced by the model and, for syllabus runs, the source pages.
type Fiche struct {
	Request FicheRequest
	Content string
	Pages   []int
}
