package notify

import (
	"errors"
	"io"
	"log"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/router"
	"github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// Sender delivers outbound messages (email, chat webhooks) through shoutrrr
// service URLs. It is reserved for password-reset and status-alert flows; no
// request handler sends through it yet.
type Sender struct {
	router  *router.ServiceRouter
	enabled bool
}

// NewSender builds a sender from shoutrrr URLs. An empty URL list yields a
// disabled sender rather than an error.
func NewSender(urls []string) (*Sender, error) {
	if len(urls) == 0 {
		return &Sender{}, nil
	}

	sender, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, err
	}
	sender.SetLogger(log.New(io.Discard, "", 0))

	return &Sender{router: sender, enabled: true}, nil
}

func (s *Sender) Enabled() bool {
	return s.enabled
}

func (s *Sender) Send(title, message string) error {
	if !s.enabled {
		return errors.New("notifications are not configured")
	}

	params := types.Params{}
	if title != "" {
		params.SetTitle(title)
	}

	for _, err := range s.router.Send(message, &params) {
		if err != nil {
			return err
		}
	}
	return nil
}
