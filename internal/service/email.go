package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendReservationCreated(ctx context.Context, email, clientName, vehicleName, reference string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your reservation for %s.\nReference: %s\n\nWe will let you know once an operator confirms it.\n\nBest regards,\nThe Wheelshare Team", clientName, vehicleName, reference)
	return s.send(email, "Reservation received", body)
}

func (s *emailService) SendReservationConfirmed(ctx context.Context, email, clientName, vehicleName, reference string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour reservation for %s has been confirmed.\nReference: %s\n\nBest regards,\nThe Wheelshare Team", clientName, vehicleName, reference)
	return s.send(email, "Reservation confirmed", body)
}

func (s *emailService) SendCancellationRequested(ctx context.Context, email, clientName, vehicleName, reference string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour cancellation request for %s was recorded and awaits operator confirmation.\nReference: %s\n\nBest regards,\nThe Wheelshare Team", clientName, vehicleName, reference)
	return s.send(email, "Cancellation requested", body)
}

func (s *emailService) SendReservationCancelled(ctx context.Context, email, clientName, vehicleName, reference string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour reservation for %s has been cancelled.\nReference: %s\n\nBest regards,\nThe Wheelshare Team", clientName, vehicleName, reference)
	return s.send(email, "Reservation cancelled", body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, clientName, vehicleName string, startAt time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nA reminder that your rental of %s starts on %s.\n\nBest regards,\nThe Wheelshare Team", clientName, vehicleName, startAt.Format(time.RFC1123))
	return s.send(email, "Your rental starts soon", body)
}
