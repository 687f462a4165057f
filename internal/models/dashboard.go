package models

import "time"

// DailyStat aggregates one day of study activity
type DailyStat struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	StudyTime    int     `json:"studyTime"` // seconds
	WordsLearned int     `json:"wordsLearned"`
	Accuracy     float64 `json:"accuracy"` // percentage 0-100
}

// StrengthBucket is one bar of the memory-strength histogram
type StrengthBucket struct {
	Range string `json:"range"` // e.g. "0-20"
	Count int    `json:"count"`
}

// RecentWord is a recently reviewed word shown on the dashboard
type RecentWord struct {
	English        string     `json:"english"`
	Chinese        string     `json:"chinese"`
	MemoryStrength int        `json:"memoryStrength"`
	LastReviewed   *time.Time `json:"lastReviewed,omitempty"`
	NextReview     time.Time  `json:"nextReview"`
}

// DashboardData is the aggregate payload for the learning dashboard
type DashboardData struct {
	TotalDays                  int              `json:"totalDays"`
	TotalTime                  int              `json:"totalTime"` // seconds
	TotalWords                 int              `json:"totalWords"`
	MasteredWords              int              `json:"masteredWords"`
	LearningWords              int              `json:"learningWords"`
	NewWords                   int              `json:"newWords"`
	AverageAccuracy            float64          `json:"averageAccuracy"`
	DailyStats                 []DailyStat      `json:"dailyStats"`
	MemoryStrengthDistribution []StrengthBucket `json:"memoryStrengthDistribution"`
	RecentWords                []RecentWord     `json:"recentWords"`
}

// WordProgressDetail is a per-word row in the forgetting-curve view
type WordProgressDetail struct {
	ID             int        `json:"id"`
	English        string     `json:"word"`
	Chinese        string     `json:"translation"`
	MemoryStrength int        `json:"memoryStrength"`
	Status         string     `json:"status"`
	NextReviewAt   time.Time  `json:"nextReviewAt"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	ReviewCount    int        `json:"reviewCount"`
	CorrectCount   int        `json:"correctCount"`
	IncorrectCount int        `json:"incorrectCount"`
}

// ChartDataset is one line of the chart payload
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Fill            bool      `json:"fill"`
}

// ChartData is the chart-ready shape consumed by the frontend
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ForgettingCurveData classifies a user's words into memory buckets
type ForgettingCurveData struct {
	Words           []WordProgressDetail `json:"words"`
	ForgettingWords []WordProgressDetail `json:"forgettingWords"` // due words whose strength is decaying
	MasteredWords   []WordProgressDetail `json:"masteredWords"`   // strength >= 80
	LearningWords   []WordProgressDetail `json:"learningWords"`   // strength 20-79
	NewWords        []WordProgressDetail `json:"newWords"`        // strength < 20
	ChartData       ChartData            `json:"chartData"`
}
