package stripegw

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/wanderplan/travel-planner-api/internal/ports/out/paymentgw"
)

const defaultBaseURL = "https://api.stripe.com"

// Config carries the credentials and fixed confirmation settings for one
// Stripe client.
type Config struct {
	SecretKey string
	BaseURL   string
	ReturnURL string
	Timeout   time.Duration
}

// Client is a Stripe implementation of paymentgw.Client backed by the
// PaymentIntents API. Intents are confirmed immediately on creation.
type Client struct {
	http      *resty.Client
	secretKey string
	returnURL string
	log       zerolog.Logger
}

var _ paymentgw.Client = (*Client)(nil)

func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		http:      http,
		secretKey: strings.TrimSpace(cfg.SecretKey),
		returnURL: cfg.ReturnURL,
		log:       log.With().Str("component", "stripegw").Logger(),
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
	LatestCharge struct {
		ReceiptURL string `json:"receipt_url"`
	} `json:"latest_charge"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CreateIntent(ctx context.Context, p paymentgw.CreateIntentParams) (paymentgw.Intent, error) {
	if c.secretKey == "" {
		return paymentgw.Intent{}, paymentgw.ErrNotConfigured
	}

	form := map[string]string{
		"amount":              strconv.FormatInt(p.AmountMinor, 10),
		"currency":            p.Currency,
		"payment_method":      p.PaymentMethodID,
		"confirmation_method": "automatic",
		"confirm":             "true",
		"expand[]":            "latest_charge",
	}
	if p.Description != "" {
		form["description"] = p.Description
	}
	if c.returnURL != "" {
		form["return_url"] = c.returnURL
	}

	var (
		ok   intentResponse
		fail errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.secretKey).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(form).
		SetResult(&ok).
		SetError(&fail).
		Post("/v1/payment_intents")
	if err != nil {
		return paymentgw.Intent{}, fmt.Errorf("create payment intent: %w", err)
	}

	if resp.IsError() {
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("stripe_code", fail.Error.Code).
			Msg("payment intent rejected")
		if resp.StatusCode() >= 400 && resp.StatusCode() < 500 {
			return paymentgw.Intent{}, &paymentgw.DeclinedError{
				Code:        fail.Error.Code,
				UserMessage: fail.Error.Message,
			}
		}
		return paymentgw.Intent{}, fmt.Errorf("stripe error (status %d)", resp.StatusCode())
	}

	return paymentgw.Intent{
		ID:           ok.ID,
		Status:       ok.Status,
		ClientSecret: ok.ClientSecret,
		ReceiptURL:   ok.LatestCharge.ReceiptURL,
	}, nil
}
