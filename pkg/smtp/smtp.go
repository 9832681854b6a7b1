package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"strings"

	"SonicSavor/internal/entity"
)

type ItfSmtp interface {
	SendReservationNotice(to string, reservation entity.Reservation) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	send func(addr string, a smtpPkg.Auth, from string, to []string, msg []byte) error
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	return &smtp{
		auth: smtpPkg.PlainAuth("", mail, password, host),
		mail: mail,
		host: host,
		send: smtpPkg.SendMail,
	}
}

func (s *smtp) SendReservationNotice(to string, r entity.Reservation) error {
	if to == "" {
		return nil
	}

	return s.send(s.host+":587", s.auth, s.mail, []string{to}, reservationMessage(s.mail, to, r))
}

func reservationMessage(from, to string, r entity.Reservation) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: New reservation %s\r\n\r\n", r.Code)
	fmt.Fprintf(&b, "Reservation %s\r\n", r.Code)
	fmt.Fprintf(&b, "Name: %s\r\n", r.CustomerName)
	fmt.Fprintf(&b, "People: %d\r\n", r.People)
	fmt.Fprintf(&b, "Time: %s\r\n", r.TimeSlot)
	return []byte(b.String())
}
