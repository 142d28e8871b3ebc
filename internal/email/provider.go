package email

// Provider defines the mail dispatch interface. Delivery is best-effort:
// callers log failures and do not retry.
type Provider interface {
	// Send dispatches a single message
	Send(email *Email) error

	// Validate checks the provider configuration
	Validate() error
}
