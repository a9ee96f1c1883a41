// Package notify delivers accepted submissions to organizers.
//
// Every submission goes to the diagnostic log. When a Telegram bot is
// configured the same summary is posted to the organizers' chat. Delivery
// failures never reject a submission; callers log them and move on.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Event kinds.
const (
	KindTeamRegistration = "team_registration"
	KindSponsorInquiry   = "sponsor_inquiry"
)

// Field is one labelled line of an event summary.
type Field struct {
	Name  string
	Value string
}

// Event describes an accepted submission.
type Event struct {
	Kind        string
	ReferenceID string
	Title       string
	Fields      []Field
}

// Text renders the event as a plain multi-line message.
func (e Event) Text() string {
	var b strings.Builder
	b.WriteString(e.Title)
	b.WriteString("\nReference: ")
	b.WriteString(e.ReferenceID)
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "\n%s: %s", f.Name, f.Value)
	}
	return b.String()
}

// Notifier delivers events.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// LogNotifier writes events to the structured log.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

// NewLogNotifier creates a notifier backed by logger.
func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the event with one key per field.
func (n *LogNotifier) Notify(_ context.Context, event Event) error {
	kv := make([]interface{}, 0, 4+2*len(event.Fields))
	kv = append(kv, "kind", event.Kind, "reference_id", event.ReferenceID)
	for _, f := range event.Fields {
		kv = append(kv, fieldKey(f.Name), f.Value)
	}
	n.logger.Infow("submission received", kv...)
	return nil
}

func fieldKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Multi fans an event out to several notifiers.
type Multi []Notifier

// Notify calls every notifier and joins their errors.
func (m Multi) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards events.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(context.Context, Event) error {
	return nil
}
