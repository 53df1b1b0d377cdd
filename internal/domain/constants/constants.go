// Package constants holds domain-wide constant values shared across layers.
package constants

// SystemActor is the audit actor recorded for self-service flows, where the
// acting user does not exist yet or acts on their own record.
const SystemActor = "system"

// Cache key prefixes for the ephemeral cache. Keys are built by
// service.CacheKey as "<prefix>:<id>".
const (
	CacheKeySessionBlacklist  = "auth:session-blacklist"
	CacheKeyEmailVerification = "auth:email-verification"
	CacheKeyPasswordReset     = "auth:password-reset"
)

// Email job names consumed by the mail worker.
const (
	JobEmailVerification      = "email-verification"
	JobEmailAfterVerification = "email-after-verification"
	JobEmailForgotPassword    = "email-forgot-password"
)

// PubSub provider types for the email queue publisher.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
