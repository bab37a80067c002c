package mailer

import (
	"bytes"
	"html/template"
	texttemplate "text/template"
)

const otpTextBody = `Hi {{.Name}},

You requested a password reset for your Sreca account.

Your one-time code is: {{.Code}}

The code expires in 15 minutes. If you did not request a reset, you can
ignore this email.

- The Sreca Team
`

const otpHTMLBody = `<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Password Reset</h2>
  <p>Hi {{.Name}},</p>
  <p>You requested a password reset for your Sreca account.</p>
  <p style="font-size: 24px; letter-spacing: 4px;"><strong>{{.Code}}</strong></p>
  <p>The code expires in 15 minutes. If you did not request a reset, you can ignore this email.</p>
  <p>- The Sreca Team</p>
</body>
</html>
`

const welcomeTextBody = `Hi {{.Name}},

Welcome to Sreca! Your account ({{.Email}}) has been created successfully.

- The Sreca Team
`

const welcomeHTMLBody = `<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Welcome to Sreca</h2>
  <p>Hi {{.Name}},</p>
  <p>Your account (<strong>{{.Email}}</strong>) has been created successfully.</p>
  <p>- The Sreca Team</p>
</body>
</html>
`

var (
	otpText     = texttemplate.Must(texttemplate.New("otp_text").Parse(otpTextBody))
	otpHTML     = template.Must(template.New("otp_html").Parse(otpHTMLBody))
	welcomeText = texttemplate.Must(texttemplate.New("welcome_text").Parse(welcomeTextBody))
	welcomeHTML = template.Must(template.New("welcome_html").Parse(welcomeHTMLBody))
)

func renderOTP(name, code string) (string, string, error) {
	data := struct{ Name, Code string }{Name: name, Code: code}

	var text, html bytes.Buffer
	if err := otpText.Execute(&text, data); err != nil {
		return "", "", err
	}
	if err := otpHTML.Execute(&html, data); err != nil {
		return "", "", err
	}

	return text.String(), html.String(), nil
}

func renderWelcome(name, email string) (string, string, error) {
	data := struct{ Name, Email string }{Name: name, Email: email}

	var text, html bytes.Buffer
	if err := welcomeText.Execute(&text, data); err != nil {
		return "", "", err
	}
	if err := welcomeHTML.Execute(&html, data); err != nil {
		return "", "", err
	}

	return text.String(), html.String(), nil
}
