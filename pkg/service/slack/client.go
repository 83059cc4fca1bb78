package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
)

// client implements Service against the real Slack API
type client struct {
	api     *slack.Client
	channel string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithChannel sets the curation channel
func WithChannel(channel string) Option {
	return func(c *client) {
		if channel != "" {
			c.channel = channel
		}
	}
}

// New creates a Slack service with the provided bot token
func New(token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	c := &client{
		api:     slack.New(token),
		channel: DefaultChannel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// PostCandidates posts the candidate cars as a single block kit message.
func (c *client) PostCandidates(ctx context.Context, cars []*model.Car) error {
	if len(cars) == 0 {
		return nil
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(
			slack.PlainTextType,
			fmt.Sprintf("%d candidate cars for curation", len(cars)),
			false, false,
		)),
	}

	for _, car := range cars {
		score := "unknown"
		if car.FilthScore != nil {
			score = fmt.Sprintf("%d", *car.FilthScore)
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(
				slack.MarkdownType,
				fmt.Sprintf("*%d %s %s* (filth score: %s)\n`%s`", car.Year, car.Make, car.Model, score, car.ID),
				false, false,
			),
			nil, nil,
		))
	}

	if _, _, err := c.api.PostMessageContext(ctx, c.channel, slack.MsgOptionBlocks(blocks...)); err != nil {
		return goerr.Wrap(err, "failed to post candidates",
			goerr.V("channel", c.channel), goerr.V("count", len(cars)))
	}

	return nil
}
