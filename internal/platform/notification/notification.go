// Package notification formats and dispatches appointment-confirmation email.
// Delivery is delegated to an EmailSender collaborator; callers treat dispatch
// as fire-and-forget and never fail a booking on a send error.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// EmailSender is the interface for the external mail transport.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// AppointmentConfirmation carries everything the confirmation template needs.
type AppointmentConfirmation struct {
	Recipient   string
	PatientName string
	DoctorName  string
	Date        string
	Time        string
	Reason      string
}

// Template defines a reusable notification template.
type Template struct {
	ID      string
	Subject string
	Body    string
}

const appointmentConfirmationID = "appointment-confirmation"

// TemplateEngine manages notification templates and renders them with data.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine creates a TemplateEngine with the built-in templates
// pre-registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{templates: make(map[string]*Template)}
	e.RegisterTemplate(Template{
		ID:      appointmentConfirmationID,
		Subject: "Appointment Confirmation - Healthcare Consultation",
		Body: "Dear {{patient_name}},\n\n" +
			"Your appointment has been confirmed with the following details:\n\n" +
			"  Doctor: {{doctor_name}}\n" +
			"  Date: {{date}}\n" +
			"  Time: {{time}}\n" +
			"  Reason: {{reason}}\n\n" +
			"Please arrive 10 minutes early for your appointment.\n\n" +
			"Best regards,\nHealthcare Consultation Team",
	})
	return e
}

// RegisterTemplate adds or replaces a template in the engine.
func (e *TemplateEngine) RegisterTemplate(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render looks up a template by ID and performs {{key}} replacement using the
// supplied data map. Keys present in the template but absent from data are
// left as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (subject, body string, err error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %q not found", templateID)
	}

	subject = t.Subject
	body = t.Body
	for k, v := range data {
		placeholder := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, placeholder, v)
		body = strings.ReplaceAll(body, placeholder, v)
	}
	return subject, body, nil
}

// Mailer renders templates and hands them to the configured sender.
type Mailer struct {
	sender    EmailSender
	templates *TemplateEngine
}

func NewMailer(sender EmailSender) *Mailer {
	return &Mailer{sender: sender, templates: NewTemplateEngine()}
}

// SendAppointmentConfirmation dispatches the confirmation email for a booked
// appointment.
func (m *Mailer) SendAppointmentConfirmation(ctx context.Context, conf AppointmentConfirmation) error {
	if conf.Recipient == "" {
		return errors.New("recipient is required")
	}

	subject, body, err := m.templates.Render(appointmentConfirmationID, map[string]string{
		"patient_name": conf.PatientName,
		"doctor_name":  conf.DoctorName,
		"date":         conf.Date,
		"time":         conf.Time,
		"reason":       conf.Reason,
	})
	if err != nil {
		return err
	}

	return m.sender.SendEmail(ctx, conf.Recipient, subject, body)
}

// MockEmailSender is a test double for EmailSender.
type MockEmailSender struct {
	mu         sync.Mutex
	calls      []EmailCall
	ShouldFail bool
}

// EmailCall records a single call to SendEmail.
type EmailCall struct {
	To      string
	Subject string
	Body    string
}

func (m *MockEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, EmailCall{To: to, Subject: subject, Body: body})
	if m.ShouldFail {
		return errors.New("send failed")
	}
	return nil
}

// Calls returns a copy of recorded email calls.
func (m *MockEmailSender) Calls() []EmailCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailCall, len(m.calls))
	copy(out, m.calls)
	return out
}
