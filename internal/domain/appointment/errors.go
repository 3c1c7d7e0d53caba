package appointment

import "errors"

var (
	// ErrNotFound is returned when no appointment matches the lookup.
	ErrNotFound = errors.New("appointment not found")

	// ErrSlotTaken is returned when a scheduled appointment already holds
	// the requested (doctor, date, time) slot.
	ErrSlotTaken = errors.New("time slot is already booked")

	// ErrAccessDenied is returned when the caller is neither the patient
	// nor the doctor on the appointment.
	ErrAccessDenied = errors.New("access denied")
)
