package email

// Email represents a mail message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Config holds SMTP settings, injected at construction.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
