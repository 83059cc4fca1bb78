package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/dirtlot-lab/dirtlot/pkg/service/slack"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

// MockBotToken selects the logging mock instead of the real Slack API.
const MockBotToken = "mock-slack-token"

// Slack holds CLI flags for the curation notification channel
type Slack struct {
	botToken string
	channel  string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (empty or mock-slack-token runs the logging mock)",
			Category:    "Slack",
			Sources:     cli.EnvVars("DIRTLOT_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for curation candidates",
			Category:    "Slack",
			Value:       slack.DefaultChannel,
			Sources:     cli.EnvVars("DIRTLOT_SLACK_CHANNEL"),
			Destination: &x.channel,
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel", x.channel),
	)
}

// Channel returns the configured curation channel
func (x *Slack) Channel() string {
	return x.channel
}

// Configure builds the Slack service. Without a real bot token the logging
// mock is returned so curation flows stay observable in development.
func (x *Slack) Configure() (slack.Service, error) {
	if x.botToken == "" || x.botToken == MockBotToken {
		logging.Default().Info("Slack bot token not configured, using logging mock", "channel", x.channel)
		return slack.NewMock(x.channel), nil
	}

	svc, err := slack.New(x.botToken, slack.WithChannel(x.channel))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack service")
	}
	logging.Default().Info("Slack service enabled", "channel", x.channel)
	return svc, nil
}
