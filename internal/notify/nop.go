package notify

import "context"

type nopPublisher struct{}

// Nop returns a Publisher that drops everything. Used when no broadcast
// channel is configured.
func Nop() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, []byte) error { return nil }

var _ Publisher = nopPublisher{}
