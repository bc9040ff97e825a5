// Package content holds the built-in study material: practice questions,
// vocabulary flashcards, grammar reference, the study checklist, and the
// exam structure map. All data is read-only.
package content

// QuestionType distinguishes the two TOPIK I paper sections.
type QuestionType string

const (
	Reading   QuestionType = "reading"
	Listening QuestionType = "listening"
)

// Question is one multiple-choice practice question.
type Question struct {
	ID          string
	Type        QuestionType
	RangeKey    string // maps to an ExamRange on the exam structure map
	ExamSet     int
	Prompt      string
	Script      string // listening only; the spoken text
	Options     [4]string
	Correct     int
	Points      int
	Explanation string
	Translation string
}

// Flashcard is one vocabulary card.
type Flashcard struct {
	ID       string
	Korean   string
	English  string
	Category string
	Example  string
}

// GrammarExample pairs a Korean sentence with its translation.
type GrammarExample struct {
	Korean  string
	English string
}

// GrammarPoint is one pattern in the grammar reference.
type GrammarPoint struct {
	Pattern     string
	Explanation string
	Usage       string
	Examples    []GrammarExample
}

// ChecklistItem is one row of the fixed study checklist.
type ChecklistItem struct {
	ID       string
	Label    string
	Category string
}

// StudyResource is an external link attached to a checklist guide.
type StudyResource struct {
	Name string
	URL  string
}

// StudyGuide is the expanded study note behind a checklist item.
type StudyGuide struct {
	Guide     string
	Resources []StudyResource
}

// ExamRange is one band of the official exam structure.
type ExamRange struct {
	Range string
	Topic string
	Note  string
}
