package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendWelcomeEmail notifies a patient registered by their doctor, carrying
// the temporary password they must change on first login. Delivery is
// best effort; callers treat a failure as non-fatal.
func SendWelcomeEmail(email, name, tempPassword string) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your CareLink account")

	m.SetBody("text/plain",
		"Hello "+name+",\n\n"+
			"Your doctor created a CareLink account for you.\n"+
			"Temporary password: "+tempPassword+"\n\n"+
			"Please sign in and change it as soon as possible.")

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0;">
		<div style="background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px;">
			<h1 style="color: #333333;">Welcome to CareLink</h1>
			<p style="color: #666666;">Hello ` + name + `, your doctor created a CareLink account for you.</p>
			<p style="color: #666666;">Temporary password:</p>
			<p style="font-weight: bold; color: #007bff;">` + tempPassword + `</p>
			<p style="color: #666666;">Please sign in and change it as soon as possible.</p>
		</div>
	</body>
	</html>
	`
	m.AddAlternative("text/html", htmlBody)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value: %v", err)
		return err
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
