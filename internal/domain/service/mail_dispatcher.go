package service

import "context"

// EmailJob describes one outbound email to be processed asynchronously by the
// mail worker. Delivery is at-least-once; the worker retries up to the job's
// attempt limit.
type EmailJob struct {
	Name     string `json:"name"`               // Job name, one of the constants.JobEmail* values.
	Email    string `json:"email"`              // Recipient address.
	Username string `json:"username,omitempty"` // Recipient display name, for templates that greet the user.
	Token    string `json:"token,omitempty"`    // Verification token embedded in the emailed link.
	Attempts int    `json:"attempts"`           // Maximum delivery attempts before the job is dropped.
}

// MailDispatcher enqueues email jobs onto the notification queue. Callers
// treat Enqueue as fire-and-forget: only the enqueue itself is awaited, and a
// failure never rolls back the primary state change that triggered it.
type MailDispatcher interface {
	// Enqueue publishes an email job for async delivery.
	Enqueue(ctx context.Context, job *EmailJob) error

	// Close releases any resources held by the dispatcher.
	Close() error
}
