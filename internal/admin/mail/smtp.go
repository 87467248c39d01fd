package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
)

const inviteSubject = "You have been invited"

// inviteBody is the HTML body of the invitation email.
var inviteBody = template.Must(template.New("invite").Parse(`<html>
<body>
<p>You have been invited to join <b>{{.OrgName}}</b>.</p>
<p><a href="{{.InviteURL}}">Accept your invitation</a></p>
<p>If the link does not work, paste this address into your browser: {{.InviteURL}}</p>
</body>
</html>`))

// SMTPMailer sends invitation emails over plain SMTP with AUTH PLAIN.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) SendInvite(ctx context.Context, inv Invite) error {
	var body bytes.Buffer
	if err := inviteBody.Execute(&body, inv); err != nil {
		return fmt.Errorf("mail: render invite body: %w", err)
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.From, inv.To, inviteSubject, body.String(),
	)

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	if err := smtp.SendMail(addr, auth, m.From, []string{inv.To}, []byte(msg)); err != nil {
		return fmt.Errorf("mail: send invite: %w", err)
	}
	return nil
}
