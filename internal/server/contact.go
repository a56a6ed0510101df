package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jglims/portfolio/internal/config"
)

// ContactForm is the contact section's form. Validation runs through gin's
// binding (go-playground/validator tags).
type ContactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(form ContactForm) error
}

var ErrMailNotConfigured = errors.New("SMTP credentials not configured")

// SMTPMailer sends submissions with net/smtp using PLAIN auth.
type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(form ContactForm) error {
	if !m.cfg.Configured() {
		return ErrMailNotConfigured
	}
	to := m.cfg.To
	if to == "" {
		to = m.cfg.User
	}

	msg := composeMessage(m.cfg.User, to, form)

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	log.Printf("Email sent successfully from %s (%s)", form.Name, form.Email)
	return nil
}

// headerLine drops the line breaks that would let a value start a new header.
var headerLine = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func composeMessage(from, to string, form ContactForm) []byte {
	name := headerLine.Replace(form.Name)
	replyTo := headerLine.Replace(form.Email)

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, replyTo, form.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + replyTo + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// HTMX contact form fragment
func (s *Server) contactForm(c *gin.Context) {
	lang := s.language(c)
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"s": s.catalog.Strings(lang),
	})
}

// Handle contact form submission with HTMX
func (s *Server) contact(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email and a message.",
		})
		return
	}
	form.Name = strings.TrimSpace(headerLine.Replace(form.Name))

	if err := s.mailer.Send(form); err != nil {
		log.Printf("Error sending email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
