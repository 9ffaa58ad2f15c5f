// Package insight derives a student's performance picture from a single
// immutable StudentData record: average score, a weighted predicted
// grade, a risk tier, weak-subject ranking, advisory alerts, a daily
// study plan, and the chart projections the dashboard renders.
//
// Every function is pure and deterministic. Nothing is cached inside
// the package; callers re-evaluate whenever the input changes.
package insight

// Evaluate validates the input and computes the full derived record.
// It is the only entry point the service layer uses.
func Evaluate(d StudentData) (Evaluation, error) {
	if err := Validate(d); err != nil {
		return Evaluation{}, err
	}
	avg := AverageMarks(d.Subjects)
	predicted := PredictedGrade(d, avg)
	weak := WeakSubjects(d.Subjects)
	return Evaluation{
		AverageMarks:   avg,
		PredictedGrade: predicted,
		RiskLevel:      ClassifyRisk(predicted),
		WeakSubjects:   weak,
		Alerts:         BuildAlerts(d, avg, weak, predicted),
		StudyPlan:      StudyPlan(d, weak),
		Subjects:       Breakdown(d.Subjects),
		Distribution:   Distribution(d.Subjects),
	}, nil
}
