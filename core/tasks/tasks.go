package tasks

import (
	"context"
	"encoding/json"

	"internhub/core/constants"
	"internhub/core/logger"
	"internhub/core/utils"

	"github.com/hibiken/asynq"
)

// Email payloads. All outbound mail goes through the asynq queue so request
// handling never blocks on SMTP.

type CredentialsEmailPayload struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type BookingEmailPayload struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	OfferTitle  string `json:"offer_title"`
	CompanyName string `json:"company_name"`
	EventName   string `json:"event_name"`
	SlotTime    string `json:"slot_time"`
}

// Client wraps the asynq client; a nil Client drops tasks silently so that
// email delivery stays best-effort in tests and degraded deployments.
type Client struct {
	inner *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) enqueue(taskType string, payload any) {
	if c == nil || c.inner == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Tasks:Enqueue:Marshal:Error:", err)
		return
	}
	task := asynq.NewTask(taskType, data)
	if _, err := c.inner.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		logger.Error("Tasks:Enqueue:Error:", "task", taskType, "error", err)
	}
}

func (c *Client) EnqueueCredentialsEmail(p CredentialsEmailPayload) {
	c.enqueue(constants.TaskEmailCredentials, p)
}

func (c *Client) EnqueueBookingConfirmedEmail(p BookingEmailPayload) {
	c.enqueue(constants.TaskEmailBookingConfirmed, p)
}

func (c *Client) EnqueueBookingCancelledEmail(p BookingEmailPayload) {
	c.enqueue(constants.TaskEmailBookingCancelled, p)
}

func (c *Client) Close() error {
	if c == nil || c.inner == nil {
		return nil
	}
	return c.inner.Close()
}

// NewServer builds the asynq worker that processes the email queue.
func NewServer(redisAddr, redisPassword string, redisDB int) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskEmailCredentials, handleCredentialsEmail)
	mux.HandleFunc(constants.TaskEmailBookingConfirmed, handleBookingConfirmedEmail)
	mux.HandleFunc(constants.TaskEmailBookingCancelled, handleBookingCancelledEmail)
	return srv, mux
}

func handleCredentialsEmail(ctx context.Context, t *asynq.Task) error {
	var p CredentialsEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	return utils.SendTemplateEmail(
		[]string{p.Email},
		"Your InternHub account",
		"credentials_email.html",
		utils.TemplateData{FullName: p.FullName, Email: p.Email, Password: p.Password},
	)
}

func handleBookingConfirmedEmail(ctx context.Context, t *asynq.Task) error {
	var p BookingEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	return utils.SendTemplateEmail(
		[]string{p.Email},
		"Interview booked: "+p.CompanyName,
		"booking_confirmed_email.html",
		utils.TemplateData{
			FullName:    p.FullName,
			OfferTitle:  p.OfferTitle,
			CompanyName: p.CompanyName,
			EventName:   p.EventName,
			SlotTime:    p.SlotTime,
		},
	)
}

func handleBookingCancelledEmail(ctx context.Context, t *asynq.Task) error {
	var p BookingEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	return utils.SendTemplateEmail(
		[]string{p.Email},
		"Interview cancelled: "+p.CompanyName,
		"booking_cancelled_email.html",
		utils.TemplateData{
			FullName:    p.FullName,
			OfferTitle:  p.OfferTitle,
			CompanyName: p.CompanyName,
			EventName:   p.EventName,
			SlotTime:    p.SlotTime,
		},
	)
}
