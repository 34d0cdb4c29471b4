package notification

import (
	"time"
)

// Kind identifies the lifecycle event a notification reports.
type Kind string

const (
	KindNewRequest       Kind = "new_request"
	KindApproved         Kind = "approved"
	KindRejected         Kind = "rejected"
	KindApprovalReminder Kind = "approval_reminder"
	KindCancelled        Kind = "cancelled"
)

// RecipientRole records in which capacity the recipient is addressed.
type RecipientRole string

const (
	RoleEmployee RecipientRole = "employee"
	RoleManager  RecipientRole = "manager"
	RoleApprover RecipientRole = "approver"
)

// Notification is an in-app notification record. It is created only by
// lifecycle transitions (or the reminder job); the recipient may only mark
// it read. ReadAt is set once and never cleared.
type Notification struct {
	ID            string
	RequestID     string
	RecipientID   string
	Kind          Kind
	RecipientRole RecipientRole
	Title         string
	Message       string
	IsRead        bool
	ReadAt        *time.Time
	CreatedAt     time.Time
}
