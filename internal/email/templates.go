package email

import "fmt"

// PasswordResetBody builds the plain-text reset message with the link
// the account holder follows.
func PasswordResetBody(resetURL string) string {
	return fmt.Sprintf(
		"You have requested to reset your password. Please click on the following link to reset your password:\n\n%s\n\nIf you did not request this, please ignore this email.",
		resetURL,
	)
}
