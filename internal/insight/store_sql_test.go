package insight_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/edupulse/edupulse/internal/db"
	"github.com/edupulse/edupulse/internal/insight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *insight.SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "insight_test.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return insight.NewSQLStore(dbh, "sqlite")
}

func testData() insight.StudentData {
	return insight.StudentData{
		Attendance: 82,
		Subjects: []insight.Subject{
			{Name: "Math", Marks: 72, MaxMarks: 100, HoursStudied: 8},
			{Name: "Physics", Marks: 65, MaxMarks: 100, HoursStudied: 6},
		},
		DailyStudyHours: 5,
		UpcomingDeadlines: []insight.Deadline{
			{Name: "Lab", Subject: "Physics", DaysLeft: 3},
		},
	}
}

func TestSQLStoreSnapshotRoundTrip(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LatestSnapshot("s1")
	assert.ErrorIs(t, err, insight.ErrSnapshotNotFound)

	snap, err := store.PutSnapshot("s1", testData())
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)

	got, err := store.LatestSnapshot("s1")
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, testData(), got.Data)
}

func TestSQLStoreEvaluationHistory(t *testing.T) {
	store := openTestStore(t)

	snap, err := store.PutSnapshot("s1", testData())
	require.NoError(t, err)

	ev, err := insight.Evaluate(snap.Data)
	require.NoError(t, err)
	ev.StudentID = "s1"
	ev.SnapshotID = snap.ID

	first, err := store.PutEvaluation(ev)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := store.PutEvaluation(insight.Evaluation{
		StudentID:      "s1",
		SnapshotID:     snap.ID,
		AverageMarks:   first.AverageMarks,
		PredictedGrade: first.PredictedGrade,
		RiskLevel:      first.RiskLevel,
		CreatedAt:      first.CreatedAt + 60,
	})
	require.NoError(t, err)

	latest, err := store.LatestEvaluation("s1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	history, err := store.ListEvaluations("s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	limited, err := store.ListEvaluations("s1", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)

	_, err = store.LatestEvaluation("nobody")
	assert.ErrorIs(t, err, insight.ErrEvaluationNotFound)
}
