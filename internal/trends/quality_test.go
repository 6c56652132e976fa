package trends

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var qualityBase = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// questionRows builds the rows for one question asked at qualityBase,
// answered after the given offsets (first offset is the earliest
// answer, matching the query ordering).
func questionRows(offsets []time.Duration, correct []bool) []QualityRow {
	id := uuid.New()
	if len(offsets) == 0 {
		return []QualityRow{{QuestionID: id, AskedAt: qualityBase}}
	}
	rows := make([]QualityRow, 0, len(offsets))
	for i, off := range offsets {
		at := qualityBase.Add(off)
		isCorrect := false
		if correct != nil {
			isCorrect = correct[i]
		}
		rows = append(rows, QualityRow{QuestionID: id, AskedAt: qualityBase, AnswerAt: &at, IsCorrect: isCorrect})
	}
	return rows
}

func TestComputeQuality_Empty(t *testing.T) {
	got := ComputeQuality(nil)
	assert.Equal(t, QualityReport{}, got)
}

func TestComputeQuality_MedianEvenCount(t *testing.T) {
	var rows []QualityRow
	for _, secs := range []time.Duration{10, 20, 30, 40} {
		rows = append(rows, questionRows([]time.Duration{secs * time.Second}, nil)...)
	}
	got := ComputeQuality(rows)
	assert.Equal(t, 25.0, got.MedianResponseTimeSeconds)
	assert.Equal(t, 25.0, got.AvgResponseTimeSeconds)
}

func TestComputeQuality_MedianOddCount(t *testing.T) {
	var rows []QualityRow
	for _, secs := range []time.Duration{10, 20, 30} {
		rows = append(rows, questionRows([]time.Duration{secs * time.Second}, nil)...)
	}
	got := ComputeQuality(rows)
	assert.Equal(t, 20.0, got.MedianResponseTimeSeconds)
	assert.Equal(t, 20.0, got.AvgResponseTimeSeconds)
}

func TestComputeQuality_UnansweredQuestion(t *testing.T) {
	rows := questionRows(nil, nil)
	rows = append(rows, questionRows([]time.Duration{30 * time.Second}, nil)...)

	got := ComputeQuality(rows)
	assert.Equal(t, 2, got.TotalQuestions)
	assert.Equal(t, 1, got.QuestionsWithAnswers)
	assert.Equal(t, 1, got.UnansweredQuestions)
	assert.Equal(t, 1, got.TotalAnswers)
	// The unanswered question contributes nothing to response times.
	assert.Equal(t, 30.0, got.AvgResponseTimeSeconds)
	assert.Equal(t, 30.0, got.MedianResponseTimeSeconds)
	assert.Equal(t, 0.5, got.QuestionAnswerRate)
}

func TestComputeQuality_MultipleAnswersUseEarliest(t *testing.T) {
	rows := questionRows([]time.Duration{10 * time.Second, 300 * time.Second, 600 * time.Second}, nil)
	got := ComputeQuality(rows)
	assert.Equal(t, 1, got.TotalQuestions)
	assert.Equal(t, 1, got.QuestionsWithMultipleAnswers)
	assert.Equal(t, 3, got.TotalAnswers)
	assert.Equal(t, 10.0, got.AvgResponseTimeSeconds)
	assert.Equal(t, 3.0, got.AvgAnswersPerQuestion)
}

func TestComputeQuality_CorrectAnswers(t *testing.T) {
	rows := questionRows([]time.Duration{10 * time.Second, 20 * time.Second}, []bool{false, true})
	rows = append(rows, questionRows([]time.Duration{15 * time.Second}, []bool{false})...)

	got := ComputeQuality(rows)
	assert.Equal(t, 1, got.QuestionsWithCorrectAnswer)
	assert.Equal(t, 1, got.CorrectAnswers)
	assert.Equal(t, 3, got.TotalAnswers)
	// 1 correct out of 3 answers, rounded to 3 decimals.
	assert.Equal(t, 0.333, got.CorrectAnswerRate)
}

func TestComputeQuality_Rates(t *testing.T) {
	var rows []QualityRow
	rows = append(rows, questionRows([]time.Duration{5 * time.Second}, nil)...)
	rows = append(rows, questionRows([]time.Duration{5 * time.Second}, nil)...)
	rows = append(rows, questionRows(nil, nil)...)

	got := ComputeQuality(rows)
	assert.Equal(t, 0.667, got.QuestionAnswerRate)
	assert.Equal(t, 1.0, got.AvgAnswersPerQuestion)
	assert.Zero(t, got.CorrectAnswerRate)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "empty", values: nil, want: 0},
		{name: "single", values: []float64{7}, want: 7},
		{name: "even", values: []float64{10, 20, 30, 40}, want: 25},
		{name: "odd", values: []float64{10, 20, 30}, want: 20},
		{name: "unsorted input", values: []float64{40, 10, 30, 20}, want: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, median(tt.values))
		})
	}
}
