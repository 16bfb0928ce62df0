package line

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// MaxMessagesPerReply is the platform limit on message objects per reply call.
const MaxMessagesPerReply = 5

// Client wraps the LINE Messaging API for replying and profile lookup.
type Client struct {
	api *messaging_api.MessagingApiAPI
}

// NewClient creates a new LINE client from the channel access token.
func NewClient(channelAccessToken string) (*Client, error) {
	api, err := messaging_api.NewMessagingApiAPI(channelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging API client: %w", err)
	}
	return &Client{api: api}, nil
}

// Reply sends messages back on the event's reply token. Messages beyond the
// platform's per-reply limit are truncated.
func (c *Client) Reply(ctx context.Context, replyToken string, messages []messaging_api.MessageInterface) error {
	if len(messages) == 0 {
		return nil
	}
	if len(messages) > MaxMessagesPerReply {
		messages = messages[:MaxMessagesPerReply]
	}

	if _, err := c.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	}); err != nil {
		return fmt.Errorf("failed to reply: %w", err)
	}
	return nil
}

// DisplayName fetches the user's profile display name.
func (c *Client) DisplayName(ctx context.Context, userID string) (string, error) {
	profile, err := c.api.GetProfile(userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch profile for %s: %w", userID, err)
	}
	return profile.DisplayName, nil
}
