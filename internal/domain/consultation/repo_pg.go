package consultation

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

const consultCols = `id, appointment_id, patient_id, doctor_id, diagnosis, treatment, prescription, notes, created_at`

func (r *repoPG) Create(ctx context.Context, c *Consultation) error {
	c.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO consultations (id, appointment_id, patient_id, doctor_id, diagnosis, treatment, prescription, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		c.ID, c.AppointmentID, c.PatientID, c.DoctorID, c.Diagnosis, c.Treatment, c.Prescription, c.Notes,
	)
	return err
}

func (r *repoPG) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Consultation, error) {
	return r.list(ctx, "patient_id", patientID)
}

func (r *repoPG) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Consultation, error) {
	return r.list(ctx, "doctor_id", doctorID)
}

func (r *repoPG) list(ctx context.Context, column string, id uuid.UUID) ([]*Consultation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+consultCols+` FROM consultations WHERE `+column+` = $1 ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consults []*Consultation
	for rows.Next() {
		var c Consultation
		err := rows.Scan(
			&c.ID, &c.AppointmentID, &c.PatientID, &c.DoctorID,
			&c.Diagnosis, &c.Treatment, &c.Prescription, &c.Notes, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		consults = append(consults, &c)
	}
	return consults, rows.Err()
}
