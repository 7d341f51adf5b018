package twilioclient

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client wraps the Twilio REST API for the two operations the service
// needs: sending an SMS and placing a voice call.
type Client struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewClient creates a new Twilio client.
func NewClient(accountSID, authToken, fromNumber string) *Client {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{client: client, fromNumber: fromNumber}
}

// SendSMS delivers a text message to the destination number.
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.fromNumber)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("error sending SMS: %w", err)
	}
	if resp.Sid != nil {
		log.Printf("Sent SMS to %s, sid: %s", to, *resp.Sid)
	}
	return nil
}

// PlaceCall rings the destination number and speaks the given message.
func (c *Client) PlaceCall(ctx context.Context, to, message string) error {
	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.fromNumber)
	params.SetTwiml(fmt.Sprintf("<Response><Say>%s</Say></Response>", html.EscapeString(message)))

	resp, err := c.client.Api.CreateCall(params)
	if err != nil {
		return fmt.Errorf("error placing call: %w", err)
	}
	if resp.Sid != nil {
		log.Printf("Placed call to %s, sid: %s", to, *resp.Sid)
	}
	return nil
}
