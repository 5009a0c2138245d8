package service

import "fmt"

func verificationEmail(otp string) (string, string) {
	subject := "Verify your email account"
	html := fmt.Sprintf(
		"<p>Use this code to verify your email. It expires shortly.</p><h2>%s</h2>",
		otp,
	)
	return subject, html
}

func welcomeEmail() (string, string) {
	return "Welcome", "<h1>Email verified successfully</h1><p>Thanks for connecting with us.</p>"
}

func resetLinkEmail(link string) (string, string) {
	subject := "Password reset"
	html := fmt.Sprintf(
		"<p>Click to reset your password:</p><p><a href=\"%s\">Reset Password</a></p>",
		link,
	)
	return subject, html
}

func resetDoneEmail() (string, string) {
	return "Password reset successfully", "<h1>Password reset successfully</h1><p>You can now sign in with your new password.</p>"
}
