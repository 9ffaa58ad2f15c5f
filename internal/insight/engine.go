package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Weighted-sum coefficients for the predicted grade. The weighting is a
// fixed heuristic tuned for display, not a fitted model.
const (
	attendanceWeight   = 0.25
	averageMarksWeight = 0.45
	studyHoursWeight   = 4.0
	deadlineSlack      = 10
	deadlineWeight     = 1.5
)

// AverageMarks returns the mean of per-subject percentages, rounded to
// the nearest integer. Callers must guarantee subjects is non-empty.
func AverageMarks(subjects []Subject) int {
	total := 0.0
	for _, s := range subjects {
		total += s.Percentage()
	}
	return int(math.Round(total / float64(len(subjects))))
}

// PredictedGrade applies the weighted formula and clamps the result to
// at most 100. There is deliberately no lower clamp: pathological
// inputs may predict below zero, matching the heuristic as shipped.
func PredictedGrade(d StudentData, averageMarks int) int {
	slack := float64(deadlineSlack - len(d.UpcomingDeadlines))
	if slack < 0 {
		slack = 0
	}
	raw := d.Attendance*attendanceWeight +
		float64(averageMarks)*averageMarksWeight +
		d.DailyStudyHours*studyHoursWeight +
		slack*deadlineWeight
	p := int(math.Round(raw))
	if p > 100 {
		p = 100
	}
	return p
}

// ClassifyRisk maps a predicted grade to a tier. Exact boundary values
// land in the safer (higher) tier.
func ClassifyRisk(predictedGrade int) RiskLevel {
	switch {
	case predictedGrade >= 75:
		return RiskLow
	case predictedGrade >= 55:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// WeakSubjects returns the subjects scoring under 70%, worst first.
// The sort is stable so equal percentages keep their input order.
func WeakSubjects(subjects []Subject) []Subject {
	weak := make([]Subject, 0, len(subjects))
	for _, s := range subjects {
		if s.Percentage() < 70 {
			weak = append(weak, s)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Percentage() < weak[j].Percentage()
	})
	return weak
}

// BuildAlerts evaluates five independent conditions in a fixed order
// and emits an alert for each one that holds. The order never changes:
// conditions that do not fire are skipped, not re-sorted.
func BuildAlerts(d StudentData, averageMarks int, weak []Subject, predictedGrade int) []Alert {
	alerts := make([]Alert, 0, 5)

	if d.Attendance < 75 {
		alerts = append(alerts, Alert{
			Kind:    AlertCritical,
			Message: fmt.Sprintf("Attendance at %.0f%% is below the 75%% requirement", d.Attendance),
			Action:  "Attend all remaining classes",
			Impact:  "Risk of exam debarment",
		})
	}
	if len(weak) > 0 {
		names := make([]string, len(weak))
		for i, s := range weak {
			names[i] = s.Name
		}
		alerts = append(alerts, Alert{
			Kind:    AlertWarning,
			Message: "Weak subjects need attention: " + strings.Join(names, ", "),
			Action:  "Prioritize these subjects in daily study",
			Impact:  "Below-target scores drag down the overall grade",
		})
	}
	for _, dl := range d.UpcomingDeadlines {
		if dl.DaysLeft <= 2 {
			alerts = append(alerts, Alert{
				Kind:    AlertCritical,
				Message: fmt.Sprintf("%q (%s) is due in %d day(s)", dl.Name, dl.Subject, dl.DaysLeft),
				Action:  "Finish this deliverable before anything else",
				Impact:  "Missed deadlines cost direct marks",
			})
			break
		}
	}
	if d.DailyStudyHours < 4 {
		alerts = append(alerts, Alert{
			Kind:    AlertInfo,
			Message: fmt.Sprintf("Daily study time of %.1fh is below the recommended 4h", d.DailyStudyHours),
			Action:  "Add at least one more focused study block per day",
			Impact:  "Consistent hours compound into grade improvement",
		})
	}
	if predictedGrade < 60 {
		alerts = append(alerts, Alert{
			Kind:    AlertCritical,
			Message: fmt.Sprintf("Predicted performance score is %d, below the passing comfort zone", predictedGrade),
			Action:  "Follow the generated study plan strictly",
			Impact:  "Current trajectory risks failing grades",
		})
	}
	return alerts
}
