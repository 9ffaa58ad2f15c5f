package insight

import "fmt"

// Subject is one graded subject in a student's record.
type Subject struct {
	Name         string  `json:"name"`
	Marks        float64 `json:"marks"`
	MaxMarks     float64 `json:"max_marks"`
	HoursStudied float64 `json:"hours_studied"`
}

// Percentage returns marks scaled to 0-100. MaxMarks must be > 0;
// validation happens at the Evaluate boundary.
func (s Subject) Percentage() float64 {
	return s.Marks / s.MaxMarks * 100
}

// Deadline is an upcoming (or overdue, DaysLeft < 0) piece of work.
type Deadline struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	DaysLeft int    `json:"days_left"`
}

// StudentData is the full input to one evaluation. It is treated as
// immutable: every derived value is recomputed from it on each call.
type StudentData struct {
	Attendance        float64    `json:"attendance"` // 0..100
	Subjects          []Subject  `json:"subjects"`
	DailyStudyHours   float64    `json:"daily_study_hours"`
	UpcomingDeadlines []Deadline `json:"upcoming_deadlines"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type AlertKind string

const (
	AlertCritical AlertKind = "critical"
	AlertWarning  AlertKind = "warning"
	AlertInfo     AlertKind = "info"
)

// Alert is a condition-triggered advisory with a suggested action.
type Alert struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
	Action  string    `json:"action"`
	Impact  string    `json:"impact"`
}

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// PlanSlot is one fixed time-of-day entry in the daily study plan.
type PlanSlot struct {
	Time     string   `json:"time"`
	Activity string   `json:"activity"`
	Subject  string   `json:"subject"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}

// SubjectBreakdown is the per-subject projection consumed by bar/radar views.
type SubjectBreakdown struct {
	Name         string  `json:"name"`
	Percentage   float64 `json:"percentage"`
	HoursStudied float64 `json:"hours_studied"`
}

// DistributionBucket is one non-empty band of the score distribution.
type DistributionBucket struct {
	Label string `json:"label"` // excellent | good | needs-work
	Count int    `json:"count"`
}

// Evaluation is the complete derived output for one StudentData input.
// ID/StudentID/SnapshotID/CreatedAt are filled by the store when an
// evaluation is persisted; the engine leaves them zero.
type Evaluation struct {
	ID         string `json:"id,omitempty"`
	StudentID  string `json:"student_id,omitempty"`
	SnapshotID string `json:"snapshot_id,omitempty"`
	CreatedAt  int64  `json:"created_at,omitempty"`

	AverageMarks   int                  `json:"average_marks"`
	PredictedGrade int                  `json:"predicted_grade"`
	RiskLevel      RiskLevel            `json:"risk_level"`
	WeakSubjects   []Subject            `json:"weak_subjects"`
	Alerts         []Alert              `json:"alerts"`
	StudyPlan      []PlanSlot           `json:"study_plan"`
	Subjects       []SubjectBreakdown   `json:"subjects"`
	Distribution   []DistributionBucket `json:"distribution"`
}

// Snapshot is a persisted StudentData record for one student.
type Snapshot struct {
	ID        string      `json:"id"`
	StudentID string      `json:"student_id"`
	Data      StudentData `json:"data"`
	CreatedAt int64       `json:"created_at"`
}

// ValidationError reports a StudentData field that failed boundary checks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// Validate applies the numeric-bounds checks the engine depends on.
// Negative DaysLeft and zero study hours are legal; an empty subject
// list or a zero MaxMarks would make the average undefined, so those
// are rejected here instead of surfacing as NaN downstream.
func Validate(d StudentData) error {
	if d.Attendance < 0 || d.Attendance > 100 {
		return &ValidationError{Field: "attendance", Reason: "must be within 0..100"}
	}
	if len(d.Subjects) == 0 {
		return &ValidationError{Field: "subjects", Reason: "at least one subject required"}
	}
	for i, s := range d.Subjects {
		if s.MaxMarks <= 0 {
			return &ValidationError{Field: fmt.Sprintf("subjects[%d].max_marks", i), Reason: "must be > 0"}
		}
		if s.Marks < 0 || s.Marks > s.MaxMarks {
			return &ValidationError{Field: fmt.Sprintf("subjects[%d].marks", i), Reason: "must be within 0..max_marks"}
		}
	}
	if d.DailyStudyHours < 0 {
		return &ValidationError{Field: "daily_study_hours", Reason: "must be >= 0"}
	}
	return nil
}
