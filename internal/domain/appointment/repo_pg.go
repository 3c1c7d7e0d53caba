package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careconnect/careconnect/internal/domain/user"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const uniqueViolation = "23505"

const apptCols = `a.id, a.patient_id, a.doctor_id, a.appointment_date, a.appointment_time,
	a.reason, a.notes, a.status, a.created_at, a.updated_at`

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, appointment_date, appointment_time, reason, notes, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Reason, a.Notes, a.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppt(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments a WHERE a.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *repoPG) SlotTaken(ctx context.Context, doctorID uuid.UUID, date user.Date, timeOfDay string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1 AND appointment_date = $2 AND appointment_time = $3 AND status = 'scheduled'
		)`, doctorID, date, timeOfDay).Scan(&taken)
	return taken, err
}

func (r *repoPG) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, "a.patient_id", patientID)
}

func (r *repoPG) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, "a.doctor_id", doctorID)
}

func (r *repoPG) list(ctx context.Context, column string, id uuid.UUID) ([]*Appointment, error) {
	query := `
		SELECT ` + apptCols + `,
			p.id, p.full_name, p.email, p.phone,
			d.id, d.full_name, d.email, d.phone
		FROM appointments a
		JOIN users p ON p.id = a.patient_id
		JOIN users d ON d.id = a.doctor_id
		WHERE ` + column + ` = $1
		ORDER BY a.appointment_date ASC, a.appointment_time ASC`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []*Appointment
	for rows.Next() {
		var a Appointment
		var patient, doctor Party
		err := rows.Scan(
			&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time,
			&a.Reason, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&patient.ID, &patient.FullName, &patient.Email, &patient.Phone,
			&doctor.ID, &doctor.FullName, &doctor.Email, &doctor.Phone,
		)
		if err != nil {
			return nil, err
		}
		a.Patient = &patient
		a.Doctor = &doctor
		appts = append(appts, &a)
	}
	return appts, rows.Err()
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Appointment, error) {
	a, err := scanAppt(r.pool.QueryRow(ctx, `
		UPDATE appointments a SET status=$2, updated_at=NOW()
		WHERE a.id = $1
		RETURNING `+apptCols,
		id, status,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func scanAppt(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time,
		&a.Reason, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
