package insight

import (
	"fmt"
	"sort"
)

// StudyPlan derives the fixed daily schedule. At most five slots; the
// morning slot is omitted when there are no weak subjects, so a strong
// student gets four.
//
// Slots 2 and 5 rank subjects by raw marks while weak-subject detection
// ranks by percentage. The mismatch is intentional and kept for
// compatibility with the shipped heuristic.
func StudyPlan(d StudentData, weak []Subject) []PlanSlot {
	plan := make([]PlanSlot, 0, 5)

	if len(weak) > 0 {
		worst := weak[0]
		plan = append(plan, PlanSlot{
			Time:     "06:00-08:00",
			Activity: "Deep focus session",
			Subject:  worst.Name,
			Priority: PriorityCritical,
			Reason:   fmt.Sprintf("Weakest subject at %.0f%%", worst.Percentage()),
		})
	}

	byMarksAsc := make([]Subject, len(d.Subjects))
	copy(byMarksAsc, d.Subjects)
	sort.SliceStable(byMarksAsc, func(i, j int) bool {
		return byMarksAsc[i].Marks < byMarksAsc[j].Marks
	})

	practice := "General"
	if len(byMarksAsc) > 1 {
		practice = byMarksAsc[1].Name
	}
	plan = append(plan, PlanSlot{
		Time:     "09:00-11:00",
		Activity: "Practice problems",
		Subject:  practice,
		Priority: PriorityHigh,
		Reason:   "Second-lowest scoring subject needs reinforcement",
	})

	afternoon := PlanSlot{
		Time:     "14:00-16:00",
		Activity: "Project work",
		Subject:  "All subjects",
		Priority: PriorityMedium,
		Reason:   "No urgent deadlines, steady project progress",
	}
	for _, dl := range d.UpcomingDeadlines {
		if dl.DaysLeft <= 3 {
			afternoon = PlanSlot{
				Time:     "14:00-16:00",
				Activity: "Complete " + dl.Name,
				Subject:  dl.Subject,
				Priority: PriorityCritical,
				Reason:   fmt.Sprintf("Due in %d day(s)", dl.DaysLeft),
			}
			break
		}
	}
	plan = append(plan, afternoon)

	plan = append(plan, PlanSlot{
		Time:     "17:00-18:30",
		Activity: "Revision and notes review",
		Subject:  "All subjects",
		Priority: PriorityMedium,
		Reason:   "Daily consolidation of covered material",
	})

	byMarksDesc := make([]Subject, len(d.Subjects))
	copy(byMarksDesc, d.Subjects)
	sort.SliceStable(byMarksDesc, func(i, j int) bool {
		return byMarksDesc[i].Marks > byMarksDesc[j].Marks
	})
	strongest := "Self-study"
	if len(byMarksDesc) > 0 {
		strongest = byMarksDesc[0].Name
	}
	plan = append(plan, PlanSlot{
		Time:     "20:00-21:30",
		Activity: "Advanced topics",
		Subject:  strongest,
		Priority: PriorityLow,
		Reason:   "Stretch work in the strongest subject",
	})

	return plan
}
