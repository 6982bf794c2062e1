package assessment

import (
	"math"

	"healthme-backend/internal/model"
)

// Score converts raw Likert answers into normalized per-dimension scores.
//
// Every question in the catalog must be answered with a value in [1,5];
// otherwise a *model.ValidationError naming all missing and out-of-range
// entries is returned. Each raw answer maps linearly onto [0,100] via
// raw/5*100 (raw=1 scores 20, not 0), answers are averaged within a
// dimension, and the mean is rounded half away from zero.
func Score(questions []model.Question, answers model.AnswerSet) (model.DimensionScores, error) {
	verr := &model.ValidationError{OutOfRange: make(map[int]int)}
	for _, q := range questions {
		raw, ok := answers[q.ID]
		if !ok {
			verr.MissingIDs = append(verr.MissingIDs, q.ID)
			continue
		}
		if raw < model.RawScoreMin || raw > model.RawScoreMax {
			verr.OutOfRange[q.ID] = raw
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}
	return scoreFilled(questions, answers), nil
}

// ScoreLenient scores an incomplete answer set by treating every unanswered
// or out-of-range entry as raw 0. It exists for preview/demo flows only;
// assessment submission always goes through the strict Score.
func ScoreLenient(questions []model.Question, answers model.AnswerSet) model.DimensionScores {
	filled := make(model.AnswerSet, len(questions))
	for _, q := range questions {
		raw := answers[q.ID]
		if raw < model.RawScoreMin || raw > model.RawScoreMax {
			raw = 0
		}
		filled[q.ID] = raw
	}
	return scoreFilled(questions, filled)
}

func scoreFilled(questions []model.Question, answers model.AnswerSet) model.DimensionScores {
	sums := make(map[model.Dimension]float64)
	counts := make(map[model.Dimension]int)
	for _, q := range questions {
		normalized := float64(answers[q.ID]) / float64(model.RawScoreMax) * 100
		sums[q.Dimension] += normalized
		counts[q.Dimension]++
	}

	scores := make(model.DimensionScores, len(counts))
	for _, dim := range model.Dimensions() {
		n := counts[dim]
		if n == 0 {
			continue // dimension not present in this catalog
		}
		scores[dim] = int(math.Round(sums[dim] / float64(n)))
	}
	return scores
}
