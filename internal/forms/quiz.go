package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lernia/console-backend/internal/model"
)

// Wire format of the platform's quiz date and time fields.
const (
	quizDateLayout     = "2006-01-02"
	quizTimeLayout     = "15:04"
	quizDateTimeLayout = quizDateLayout + "T" + quizTimeLayout
)

// Defaults for a freshly added question row.
const (
	defaultQuestionTimeLimit = 30
	minQuestionTimeLimit     = 5
)

// QuestionDraft is one editable question row of the quiz form.
type QuestionDraft struct {
	QuestionText  string
	Options       OptionSet
	CorrectAnswer int
	TimeLimit     int
}

// QuizDraft is the mutable form state behind the quiz modal.
type QuizDraft struct {
	Title         string
	Description   string
	StartDate     string
	EndDate       string
	StartTime     string
	EndTime       string
	TotalDuration string // raw form input, parsed on submit
	TotalMarks    string // raw form input, parsed on submit
	Level         string
	Questions     []QuestionDraft
}

// NewQuizDraft returns the empty draft used by the create flow.
func NewQuizDraft() *QuizDraft {
	return &QuizDraft{}
}

// QuizDraftFrom seeds a draft from an existing quiz for the edit flow.
func QuizDraftFrom(q model.Quiz) *QuizDraft {
	d := &QuizDraft{
		Title:       q.Title,
		Description: q.Description,
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
		StartTime:   q.StartTime,
		EndTime:     q.EndTime,
		Level:       q.Level,
	}
	if q.TotalDuration > 0 {
		d.TotalDuration = strconv.Itoa(q.TotalDuration)
	}
	if q.TotalMarks > 0 {
		d.TotalMarks = strconv.Itoa(q.TotalMarks)
	}
	for _, qq := range q.Questions {
		qd := QuestionDraft{
			QuestionText:  qq.QuestionText,
			CorrectAnswer: qq.CorrectAnswer,
			TimeLimit:     qq.TimeLimit,
		}
		if qd.TimeLimit == 0 {
			qd.TimeLimit = defaultQuestionTimeLimit
		}
		for i, opt := range qq.Options {
			qd.Options.UpdateAt(i, opt)
		}
		d.Questions = append(d.Questions, qd)
	}
	return d
}

// AddQuestion appends a blank question row with the default timer and the
// first option preselected as correct.
func (d *QuizDraft) AddQuestion() {
	d.Questions = append(d.Questions, QuestionDraft{TimeLimit: defaultQuestionTimeLimit})
}

// RemoveQuestion deletes the question row at index i. Out-of-range indexes
// are ignored.
func (d *QuizDraft) RemoveQuestion(i int) {
	if i < 0 || i >= len(d.Questions) {
		return
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
}

// Validate checks the draft synchronously against the quiz rules. The
// future-start rule applies only when creating (isNew); editing a quiz whose
// window already opened must stay possible. now supplies the clock so the
// rule is testable.
func (d *QuizDraft) Validate(isNew bool, now time.Time) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(d.Description) == "" {
		fields["description"] = "Description is required"
	}
	if d.StartDate == "" {
		fields["startDate"] = "Start date is required"
	}
	if d.EndDate == "" {
		fields["endDate"] = "End date is required"
	}
	if d.StartTime == "" {
		fields["startTime"] = "Start time is required"
	}
	if d.EndTime == "" {
		fields["endTime"] = "End time is required"
	}
	if n, err := strconv.Atoi(strings.TrimSpace(d.TotalDuration)); err != nil || n <= 0 {
		fields["totalDuration"] = "Total duration must be a valid number in minutes"
	}
	if n, err := strconv.Atoi(strings.TrimSpace(d.TotalMarks)); err != nil || n <= 0 {
		fields["totalMarks"] = "Total marks must be a valid number"
	}
	if len(d.Questions) == 0 {
		fields["questions"] = "At least one question is required"
	}

	for i, q := range d.Questions {
		key := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.QuestionText) == "" {
			fields[key+".questionText"] = fmt.Sprintf("Question %d: Question text is required", i+1)
		}
		if q.Options.FilledCount() < len(q.Options) {
			fields[key+".options"] = fmt.Sprintf("Question %d: All 4 options are required", i+1)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			fields[key+".correctAnswer"] = fmt.Sprintf("Question %d: Valid correct answer (0-3) is required", i+1)
		}
		if q.TimeLimit < minQuestionTimeLimit {
			fields[key+".timeLimit"] = fmt.Sprintf("Question %d: Time limit must be at least %d seconds", i+1, minQuestionTimeLimit)
		}
	}

	// Date checks only make sense once all four parts are present.
	if d.StartDate != "" && d.EndDate != "" && d.StartTime != "" && d.EndTime != "" {
		start, errS := time.ParseInLocation(quizDateTimeLayout, d.StartDate+"T"+d.StartTime, now.Location())
		end, errE := time.ParseInLocation(quizDateTimeLayout, d.EndDate+"T"+d.EndTime, now.Location())
		switch {
		case errS != nil:
			fields["startDate"] = "Start date and time are not valid"
		case errE != nil:
			fields["endDate"] = "End date and time are not valid"
		default:
			if isNew && !start.After(now) {
				fields["startDate"] = "Quiz start date and time must be in the future"
			}
			if !end.After(start) {
				fields["endDate"] = "Quiz end date and time must be after start date and time"
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Payload shapes the validated draft into the upstream body.
func (d *QuizDraft) Payload() model.QuizPayload {
	duration, _ := strconv.Atoi(strings.TrimSpace(d.TotalDuration))
	marks, _ := strconv.Atoi(strings.TrimSpace(d.TotalMarks))

	p := model.QuizPayload{
		Title:         strings.TrimSpace(d.Title),
		Description:   strings.TrimSpace(d.Description),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		TotalDuration: duration,
		TotalMarks:    marks,
		Level:         strings.TrimSpace(d.Level),
		Questions:     make([]model.QuizQuestion, 0, len(d.Questions)),
	}

	for _, q := range d.Questions {
		p.Questions = append(p.Questions, model.QuizQuestion{
			QuestionText:  strings.TrimSpace(q.QuestionText),
			Options:       q.Options.Trimmed(),
			CorrectAnswer: q.CorrectAnswer,
			TimeLimit:     q.TimeLimit,
		})
	}

	return p
}

// QuizForm is the wire form bound from a console request.
type QuizForm struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	StartTime     string         `json:"startTime"`
	EndTime       string         `json:"endTime"`
	TotalDuration string         `json:"totalDuration"`
	TotalMarks    string         `json:"totalMarks"`
	Level         string         `json:"level"`
	Questions     []QuestionForm `json:"questions"`
}

// QuestionForm is the wire form of one question row.
type QuestionForm struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"timeLimit"`
}

// Draft resolves the wire form into a draft.
func (f QuizForm) Draft() *QuizDraft {
	d := &QuizDraft{
		Title:         f.Title,
		Description:   f.Description,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		StartTime:     f.StartTime,
		EndTime:       f.EndTime,
		TotalDuration: f.TotalDuration,
		TotalMarks:    f.TotalMarks,
		Level:         f.Level,
	}
	for _, q := range f.Questions {
		qd := QuestionDraft{
			QuestionText:  q.QuestionText,
			CorrectAnswer: q.CorrectAnswer,
			TimeLimit:     q.TimeLimit,
		}
		if qd.TimeLimit == 0 {
			qd.TimeLimit = defaultQuestionTimeLimit
		}
		for i, opt := range q.Options {
			qd.Options.UpdateAt(i, opt)
		}
		d.Questions = append(d.Questions, qd)
	}
	return d
}
