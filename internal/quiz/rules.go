package quiz

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"quiz-engine/internal/domain"
)

const (
	// DefaultPoints is the value of a question without a point annotation.
	DefaultPoints = 1

	// PlaceholderImage stands in for the correct option of an image question
	// whose image reference is missing from the data set.
	PlaceholderImage = "placeholder.png"

	drawingTaskMarker = "rajzol"
)

var pointsPattern = regexp.MustCompile(`(?i)\((\d+)\s*pont`)

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".svg":  {},
	".bmp":  {},
}

// PointsOf returns the point value annotated in the question text as
// "(<N> pont", or DefaultPoints when there is none.
func PointsOf(questionText string) int {
	m := pointsPattern.FindStringSubmatch(questionText)
	if m == nil {
		return DefaultPoints
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultPoints
	}
	return n
}

// IsDrawingTask reports whether the question asks for something whose
// answer is an image, in which case the question image belongs to the
// correct option instead of the prompt.
func IsDrawingTask(questionText string) bool {
	return strings.Contains(strings.ToLower(questionText), drawingTaskMarker)
}

// IsImageRef reports whether an answer string looks like an image reference:
// it contains a path separator or ends in a known image extension.
// A text answer containing a slash is misclassified; the data set carries no
// explicit type tag to do better.
func IsImageRef(s string) bool {
	if strings.ContainsAny(s, `/\`) {
		return true
	}
	_, ok := imageExtensions[strings.ToLower(path.Ext(s))]
	return ok
}

// OptionsAreImages reports whether the answer options of q are images.
func OptionsAreImages(q domain.Question) bool {
	for _, a := range q.BadAnswers {
		if IsImageRef(a) {
			return true
		}
	}
	return false
}

// PromptImage returns the image shown with the question prompt, or "".
func PromptImage(q domain.Question) string {
	if !q.HasImage() || IsDrawingTask(q.Question) {
		return ""
	}
	return q.Image
}

// CorrectAnswerDisplay resolves the sentinel answer to the question image.
func CorrectAnswerDisplay(q domain.Question) string {
	if q.Answer == domain.SentinelAnswer && q.HasImage() {
		return q.Image
	}
	return q.Answer
}
