package notify

import "context"

// Publisher delivers a payload to topic subscribers, best effort. Callers
// never await an acknowledgment; a returned error means the payload was
// dropped and the caller decides whether that matters.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type counter interface {
	Inc()
}
