package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"path/filepath"

	"internhub/core/config"
)

// TemplateData carries the values rendered into email templates.
type TemplateData struct {
	FullName    string
	Email       string
	Password    string
	OfferTitle  string
	CompanyName string
	EventName   string
	SlotTime    string
	Message     string
}

// SendTemplateEmail renders templates/<templateName> and sends it over SMTP.
// Called from asynq task handlers, never inline in request handling.
func SendTemplateEmail(to []string, subject, templateName string, data TemplateData) error {
	cfg, ok := config.GetSafe()
	if !ok {
		return fmt.Errorf("config not initialized")
	}

	tmpl, err := template.ParseFiles(filepath.Join("templates", templateName))
	if err != nil {
		return fmt.Errorf("parse email template %s: %w", templateName, err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email template %s: %w", templateName, err)
	}

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", cfg.SMTP.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to[0]))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	return smtp.SendMail(addr, auth, cfg.SMTP.From, to, msg.Bytes())
}
