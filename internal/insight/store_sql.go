package insight

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SQLStore persists snapshots and evaluations in sqlite or postgres.
// Queries use $n placeholders, which both drivers accept.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutSnapshot(studentID string, data StudentData) (Snapshot, error) {
	dj, err := json.Marshal(data)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Data:      data,
		CreatedAt: time.Now().Unix(),
	}
	_, err = s.db.Exec(`INSERT INTO snapshots (id,student_id,data_json,created_at) VALUES ($1,$2,$3,$4)`,
		snap.ID, snap.StudentID, string(dj), snap.CreatedAt)
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *SQLStore) LatestSnapshot(studentID string) (Snapshot, error) {
	row := s.db.QueryRow(`SELECT id,student_id,data_json,created_at FROM snapshots
		WHERE student_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`, studentID)
	var snap Snapshot
	var dj string
	if err := row.Scan(&snap.ID, &snap.StudentID, &dj, &snap.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrSnapshotNotFound
		}
		return Snapshot{}, err
	}
	if err := json.Unmarshal([]byte(dj), &snap.Data); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *SQLStore) PutEvaluation(e Evaluation) (Evaluation, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}
	rj, err := json.Marshal(e)
	if err != nil {
		return Evaluation{}, err
	}
	_, err = s.db.Exec(`INSERT INTO evaluations (id,student_id,snapshot_id,average_marks,predicted_grade,risk_level,result_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.StudentID, e.SnapshotID, e.AverageMarks, e.PredictedGrade, string(e.RiskLevel), string(rj), e.CreatedAt)
	if err != nil {
		return Evaluation{}, err
	}
	return e, nil
}

func (s *SQLStore) LatestEvaluation(studentID string) (Evaluation, error) {
	row := s.db.QueryRow(`SELECT result_json FROM evaluations
		WHERE student_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`, studentID)
	return scanEvaluation(row)
}

func (s *SQLStore) ListEvaluations(studentID string, limit int) ([]Evaluation, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	rows, err := s.db.Query(`SELECT result_json FROM evaluations
		WHERE student_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2`, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Evaluation{}
	for rows.Next() {
		var rj string
		if err := rows.Scan(&rj); err != nil {
			return nil, err
		}
		var e Evaluation
		if err := json.Unmarshal([]byte(rj), &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvaluation(row *sql.Row) (Evaluation, error) {
	var rj string
	if err := row.Scan(&rj); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrEvaluationNotFound
		}
		return Evaluation{}, err
	}
	var e Evaluation
	if err := json.Unmarshal([]byte(rj), &e); err != nil {
		return Evaluation{}, err
	}
	return e, nil
}
