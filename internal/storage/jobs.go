package storage

import (
	"context"

	"github.com/lib/pq"
)

const jobSelect = `
	SELECT j.id, j.title, j.location, j.status,
	       ARRAY(SELECT s.name FROM job_skills s WHERE s.job_id = j.id ORDER BY s.position)
	FROM jobs j`

func scanJob(row rowScanner) (*JobRequisition, error) {
	j := &JobRequisition{}
	var status string
	var skills []string
	if err := row.Scan(&j.ID, &j.Title, &j.Location, &status, pq.Array(&skills)); err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	j.Status = JobStatus(status)
	j.RequiredSkills = skills
	return j, nil
}

// GetActiveJobs returns all jobs in the active status ordered by id.
func (db *DB) GetActiveJobs(ctx context.Context) ([]*JobRequisition, error) {
	rows, err := db.connection.QueryContext(ctx, jobSelect+` WHERE j.status = $1 ORDER BY j.id`, string(JobStatusActive))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*JobRequisition, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (db *DB) GetJob(ctx context.Context, jobID int64) (*JobRequisition, error) {
	j, err := scanJob(db.connection.QueryRowContext(ctx, jobSelect+` WHERE j.id = $1`, jobID))
	if err != nil {
		return nil, translate(err)
	}
	return j, nil
}
