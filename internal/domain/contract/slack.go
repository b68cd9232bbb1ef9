package contract

import "github.com/slack-go/slack"

// SlackAPI is the subset of the slack-go client used by the services.
// *slack.Client satisfies it; tests substitute a mock.
type SlackAPI interface {
	GetUserInfo(userID string) (*slack.User, error)
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
