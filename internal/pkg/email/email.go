package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"

	"github.com/ikaze-hr/leave-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailService delivers lifecycle emails. Delivery is best effort; callers
// log failures and never roll back a transition because of them.
type EmailService interface {
	SendDecision(to, employeeName, leaveTypeName, status, rejectionReason string) error
	SendNewRequest(to, approverName, employeeName, leaveTypeName, startDate, endDate string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type decisionEmailData struct {
	EmployeeName    string
	LeaveTypeName   string
	Status          string
	RejectionReason string
}

// SendDecision notifies the requester that their request was decided.
func (s *emailServiceImpl) SendDecision(to, employeeName, leaveTypeName, status, rejectionReason string) error {
	var body bytes.Buffer
	err := s.templates.ExecuteTemplate(&body, "leave_decision.html", decisionEmailData{
		EmployeeName:    employeeName,
		LeaveTypeName:   leaveTypeName,
		Status:          status,
		RejectionReason: rejectionReason,
	})
	if err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your %s request was %s", leaveTypeName, status), body.String())
}

type newRequestEmailData struct {
	ApproverName  string
	EmployeeName  string
	LeaveTypeName string
	StartDate     string
	EndDate       string
}

// SendNewRequest notifies an approver that a request awaits their decision.
func (s *emailServiceImpl) SendNewRequest(to, approverName, employeeName, leaveTypeName, startDate, endDate string) error {
	var body bytes.Buffer
	err := s.templates.ExecuteTemplate(&body, "new_request.html", newRequestEmailData{
		ApproverName:  approverName,
		EmployeeName:  employeeName,
		LeaveTypeName: leaveTypeName,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Leave request from %s", employeeName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	if !s.cfg.Enabled {
		slog.Debug("SMTP disabled, skipping email", "to", to, "subject", subject)
		return nil
	}

	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
