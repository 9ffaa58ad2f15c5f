package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateHealthyStudent(t *testing.T) {
	ev, err := Evaluate(sampleData())
	require.NoError(t, err)

	assert.Equal(t, 76, ev.AverageMarks)
	assert.Equal(t, 85, ev.PredictedGrade)
	assert.Equal(t, RiskLow, ev.RiskLevel)
	require.Len(t, ev.WeakSubjects, 1)
	assert.Equal(t, "Physics", ev.WeakSubjects[0].Name)
	assert.Len(t, ev.StudyPlan, 5)
	assert.Len(t, ev.Subjects, 5)
}

func TestEvaluateStrugglingStudent(t *testing.T) {
	d := StudentData{
		Attendance:      60,
		Subjects:        []Subject{{Name: "X", Marks: 40, MaxMarks: 100, HoursStudied: 2}},
		DailyStudyHours: 2,
	}
	ev, err := Evaluate(d)
	require.NoError(t, err)

	// 60*0.25 + 40*0.45 + 2*4 + 10*1.5 = 15+18+8+15 = 56
	assert.Equal(t, 40, ev.AverageMarks)
	assert.Equal(t, 56, ev.PredictedGrade)
	assert.Equal(t, RiskMedium, ev.RiskLevel)
	require.Len(t, ev.WeakSubjects, 1)
	assert.Equal(t, "X", ev.WeakSubjects[0].Name)

	// attendance, weak subject, study hours, low predicted grade
	require.Len(t, ev.Alerts, 4)
	assert.Contains(t, ev.Alerts[0].Message, "Attendance")
	assert.Contains(t, ev.Alerts[1].Message, "X")
	assert.Equal(t, AlertInfo, ev.Alerts[2].Kind)
	assert.Equal(t, AlertCritical, ev.Alerts[3].Kind)
}

func TestEvaluateValidation(t *testing.T) {
	cases := []struct {
		name  string
		data  StudentData
		field string
	}{
		{
			name:  "empty subjects",
			data:  StudentData{Attendance: 80},
			field: "subjects",
		},
		{
			name: "zero max marks",
			data: StudentData{
				Attendance: 80,
				Subjects:   []Subject{{Name: "A", Marks: 0, MaxMarks: 0}},
			},
			field: "subjects[0].max_marks",
		},
		{
			name: "marks above max",
			data: StudentData{
				Attendance: 80,
				Subjects:   []Subject{{Name: "A", Marks: 120, MaxMarks: 100}},
			},
			field: "subjects[0].marks",
		},
		{
			name:  "attendance out of range",
			data:  StudentData{Attendance: 130, Subjects: []Subject{{Name: "A", Marks: 1, MaxMarks: 2}}},
			field: "attendance",
		},
		{
			name: "negative study hours",
			data: StudentData{
				Attendance:      80,
				Subjects:        []Subject{{Name: "A", Marks: 1, MaxMarks: 2}},
				DailyStudyHours: -1,
			},
			field: "daily_study_hours",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.data)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestEvaluateAcceptsOverdueDeadlines(t *testing.T) {
	d := StudentData{
		Attendance:        80,
		Subjects:          []Subject{{Name: "A", Marks: 90, MaxMarks: 100}},
		DailyStudyHours:   5,
		UpcomingDeadlines: []Deadline{{Name: "Late", Subject: "A", DaysLeft: -2}},
	}
	ev, err := Evaluate(d)
	require.NoError(t, err)
	// overdue counts as urgent, both for alerts and the afternoon slot
	require.NotEmpty(t, ev.Alerts)
	assert.Contains(t, ev.Alerts[0].Message, "Late")
	assert.Equal(t, "Complete Late", ev.StudyPlan[1].Activity)
}

func TestEvaluateDeterministic(t *testing.T) {
	d := sampleData()
	a, err := Evaluate(d)
	require.NoError(t, err)
	b, err := Evaluate(d)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
