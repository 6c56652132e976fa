package trends

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// QualityRow is one question/answer pair from the quality query. A nil
// AnswerAt means the question has no answers (LEFT JOIN miss). Rows
// arrive grouped by question and ordered by answer creation time with
// answer id as tie-break, so the first row of each question carries
// its earliest answer.
type QualityRow struct {
	QuestionID uuid.UUID
	AskedAt    time.Time
	AnswerAt   *time.Time
	IsCorrect  bool
}

// QualityReport holds the answer-quality statistics for a set of
// questions.
type QualityReport struct {
	TotalQuestions               int     `json:"totalQuestions"`
	QuestionsWithAnswers         int     `json:"questionsWithAnswers"`
	UnansweredQuestions          int     `json:"unansweredQuestions"`
	QuestionsWithMultipleAnswers int     `json:"questionsWithMultipleAnswers"`
	QuestionsWithCorrectAnswer   int     `json:"questionsWithCorrectAnswer"`
	TotalAnswers                 int     `json:"totalAnswers"`
	CorrectAnswers               int     `json:"correctAnswers"`
	QuestionAnswerRate           float64 `json:"questionAnswerRate"`
	CorrectAnswerRate            float64 `json:"correctAnswerRate"`
	AvgAnswersPerQuestion        float64 `json:"avgAnswersPerQuestion"`
	AvgResponseTimeSeconds       float64 `json:"avgResponseTimeSeconds"`
	MedianResponseTimeSeconds    float64 `json:"medianResponseTimeSeconds"`
}

// ComputeQuality folds quality rows into a report. Response time per
// answered question is the elapsed seconds between the question and
// its earliest answer.
func ComputeQuality(rows []QualityRow) QualityReport {
	var report QualityReport
	var responseTimes []float64

	var current uuid.UUID
	started := false
	answersForCurrent := 0
	correctForCurrent := false

	flush := func() {
		if answersForCurrent > 1 {
			report.QuestionsWithMultipleAnswers++
		}
		if correctForCurrent {
			report.QuestionsWithCorrectAnswer++
		}
	}

	for _, row := range rows {
		if !started || row.QuestionID != current {
			if started {
				flush()
			}
			started = true
			current = row.QuestionID
			answersForCurrent = 0
			correctForCurrent = false
			report.TotalQuestions++

			if row.AnswerAt != nil {
				report.QuestionsWithAnswers++
				responseTimes = append(responseTimes, row.AnswerAt.Sub(row.AskedAt).Seconds())
			}
		}
		if row.AnswerAt != nil {
			report.TotalAnswers++
			answersForCurrent++
			if row.IsCorrect {
				report.CorrectAnswers++
				correctForCurrent = true
			}
		}
	}
	if started {
		flush()
	}

	report.UnansweredQuestions = report.TotalQuestions - report.QuestionsWithAnswers

	if report.TotalQuestions > 0 {
		report.QuestionAnswerRate = roundTo(float64(report.QuestionsWithAnswers)/float64(report.TotalQuestions), 3)
	}
	if report.TotalAnswers > 0 {
		report.CorrectAnswerRate = roundTo(float64(report.CorrectAnswers)/float64(report.TotalAnswers), 3)
	}
	if report.QuestionsWithAnswers > 0 {
		report.AvgAnswersPerQuestion = roundTo(float64(report.TotalAnswers)/float64(report.QuestionsWithAnswers), 2)
	}
	if len(responseTimes) > 0 {
		sum := 0.0
		for _, t := range responseTimes {
			sum += t
		}
		report.AvgResponseTimeSeconds = roundTo(sum/float64(len(responseTimes)), 2)
		report.MedianResponseTimeSeconds = roundTo(median(responseTimes), 2)
	}
	return report
}

// median returns the standard median: the middle value, or the average
// of the two middle values for an even count. The input is copied
// before sorting.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
