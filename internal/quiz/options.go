package quiz

import (
	"go.uber.org/zap"

	"quiz-engine/internal/domain"
)

// BuildOptions returns the shuffled answer options of q: one correct option
// followed by one per distractor before shuffling. In image mode the correct
// option carries the question image; when that image is missing a
// placeholder is used and the anomaly is logged.
func BuildOptions(q domain.Question, r Rand, log *zap.Logger) []domain.Option {
	images := OptionsAreImages(q)

	correct := domain.Option{DisplayValue: q.Answer, IsCorrectAnswer: true, IsImage: images}
	if images {
		correct.DisplayValue = q.Image
		if !q.HasImage() {
			log.Warn("Image question has no image for its correct option, using placeholder",
				zap.String("question", q.Question),
				zap.Int("distractors", len(q.BadAnswers)),
			)
			correct.DisplayValue = PlaceholderImage
		}
	}

	options := make([]domain.Option, 0, 1+len(q.BadAnswers))
	options = append(options, correct)
	for _, bad := range q.BadAnswers {
		options = append(options, domain.Option{DisplayValue: bad, IsImage: images})
	}

	Shuffle(r, options)
	return options
}
