package model

import "encoding/json"

// QuizQuestion is a single multiple-choice question with exactly four options.
type QuizQuestion struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"timeLimit"`
}

// Quiz represents a quiz record as owned by the platform. Dates and times
// are kept in the platform's wire format ("2006-01-02" / "15:04").
type Quiz struct {
	ID               string         `json:"_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate"`
	StartTime        string         `json:"startTime"`
	EndTime          string         `json:"endTime"`
	TotalDuration    int            `json:"totalDuration"`
	TotalMarks       int            `json:"totalMarks"`
	Level            string         `json:"level,omitempty"`
	Questions        []QuizQuestion `json:"questions"`
	ParticipantCount int            `json:"participantCount,omitempty"`
	CreatedAt        string         `json:"createdAt,omitempty"`
}

// QuizPayload is the shaped quiz body sent upstream on create/update.
type QuizPayload struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	StartTime     string         `json:"startTime"`
	EndTime       string         `json:"endTime"`
	TotalDuration int            `json:"totalDuration"`
	TotalMarks    int            `json:"totalMarks"`
	Level         string         `json:"level,omitempty"`
	Questions     []QuizQuestion `json:"questions"`
}

// RankingEntry is one row of the server-computed quiz leaderboard.
type RankingEntry struct {
	Rank             int     `json:"rank"`
	StudentID        string  `json:"studentId"`
	StudentName      string  `json:"studentName"`
	StudentEmail     string  `json:"studentEmail"`
	Score            float64 `json:"score"`
	MarksObtained    int     `json:"marksObtained"`
	TotalMarks       int     `json:"totalMarks"`
	CorrectAnswers   int     `json:"correctAnswers"`
	WrongAnswers     int     `json:"wrongAnswers"`
	Accuracy         float64 `json:"accuracy"`
	TimeSpentMinutes float64 `json:"timeSpentMinutes"`
	CompletedAt      string  `json:"completedAt,omitempty"`
}

// QuizStatistics is the server-computed summary shown above the leaderboard.
type QuizStatistics struct {
	TotalParticipants       int     `json:"totalParticipants"`
	AverageScore            float64 `json:"averageScore"`
	HighestScore            float64 `json:"highestScore"`
	AverageTimeSpentMinutes float64 `json:"averageTimeSpentMinutes"`
}

// QuizRankings bundles the leaderboard view for one quiz. The console does
// no aggregation of its own; everything here is displayed as received.
type QuizRankings struct {
	Quiz       Quiz           `json:"quiz"`
	Rankings   []RankingEntry `json:"rankings"`
	Statistics QuizStatistics `json:"statistics"`
}

// QuizAttempts is the attempts listing for one quiz. Individual attempts
// are opaque to the console.
type QuizAttempts struct {
	TotalParticipants int               `json:"totalParticipants"`
	Attempts          []json.RawMessage `json:"attempts"`
}
