// Package mailer provides the SMTP gateway for transactional email.
// Send never returns a Go error: every attempt yields a Result so callers
// can record the outcome uniformly in the email log.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one send attempt.
type Result struct {
	Success   bool
	MessageID string // set on success
	Err       string // set on failure
}

// Mailer sends one HTML email to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) Result
}

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // e.g. "WorkHub Pro <noreply@workhubpro.com>"
	UseSSL   bool   // implicit TLS (port 465); otherwise STARTTLS when offered
	Timeout  time.Duration
}

// SMTPMailer is the production Mailer backed by net/smtp.
type SMTPMailer struct {
	cfg Config
}

// New creates an SMTPMailer. An empty host leaves the mailer unconfigured;
// sends then fail with a Result rather than an error or panic.
func New(cfg Config) *SMTPMailer {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPMailer{cfg: cfg}
}

var _ Mailer = (*SMTPMailer)(nil)

// Send delivers one HTML message. The returned Result carries either a
// generated Message-ID or the failure text; it never panics and never
// propagates transport errors to the caller.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) Result {
	if m.cfg.Host == "" {
		return Result{Err: "mailer: not configured"}
	}

	messageID := newMessageID(m.cfg.Host)
	msg := buildMessage(m.cfg.From, to, subject, htmlBody, messageID)

	if err := m.deliver(ctx, to, msg); err != nil {
		return Result{Err: err.Error()}
	}
	return Result{Success: true, MessageID: messageID}
}

// Verify dials the SMTP server and quits, confirming reachability at startup.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("mailer: not configured")
	}
	client, err := m.dial(ctx)
	if err != nil {
		return err
	}
	return client.Quit()
}

func (m *SMTPMailer) deliver(ctx context.Context, to string, msg []byte) error {
	client, err := m.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Quit()

	if !m.cfg.UseSSL {
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsConfig := &tls.Config{ServerName: m.cfg.Host}
			if err := client.StartTLS(tlsConfig); err != nil {
				return err
			}
		}
	}

	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(envelopeAddress(m.cfg.From)); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// dial opens the connection, plain or implicit-TLS depending on config.
func (m *SMTPMailer) dial(ctx context.Context) (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	dialer := &net.Dialer{Timeout: m.cfg.Timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	if m.cfg.UseSSL {
		conn = tls.Client(conn, &tls.Config{ServerName: m.cfg.Host})
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return client, nil
}

// buildMessage assembles the RFC 5322 message with HTML body.
func buildMessage(from, to, subject, htmlBody, messageID string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// newMessageID generates a unique Message-ID scoped to the sending host.
func newMessageID(host string) string {
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}

// envelopeAddress extracts the bare address from a "Name <addr>" From header.
func envelopeAddress(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return strings.TrimSpace(from)
}
