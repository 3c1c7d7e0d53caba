package medicalrecord

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const recordCols = `id, patient_id, doctor_id, record_type, title, content, attachments, created_at`

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	if rec.Attachments == nil {
		rec.Attachments = []string{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medical_records (id, patient_id, doctor_id, record_type, title, content, attachments)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.PatientID, rec.DoctorID, rec.RecordType, rec.Title, rec.Content, rec.Attachments,
	)
	return err
}

func (r *repoPG) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordCols+` FROM medical_records WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		err := rows.Scan(
			&rec.ID, &rec.PatientID, &rec.DoctorID, &rec.RecordType,
			&rec.Title, &rec.Content, &rec.Attachments, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
