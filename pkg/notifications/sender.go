package notifications

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	eventSource     = "urn:redhat:source:console:app:domain-sync"
	eventTypePrefix = "com.redhat.console.domain-sync."
)

// DomainSyncEvent is the payload of a reconciliation run event
type DomainSyncEvent struct {
	OrgID   string   `json:"org_id"`
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Added   []string `json:"added"`
	Updated []string `json:"updated"`
	Errors  []string `json:"errors"`
}

//go:generate mockery --name Sender --filename sender_mock.go --inpackage
type Sender interface {
	// SendSyncResult publishes the outcome of a run. Delivery failures are logged, never returned.
	SendSyncResult(ctx context.Context, ownerID string, result api.SyncResult)
}

type cloudEventsSender struct {
	client cloudevents.Client
}

type noopSender struct{}

// NewSender returns a sender publishing through client, or a sender that drops events when client is nil
func NewSender(client cloudevents.Client) Sender {
	if client == nil {
		return noopSender{}
	}
	return cloudEventsSender{client: client}
}

// NewConfiguredSender uses the notifications client built by config.Load
func NewConfiguredSender() Sender {
	return NewSender(config.Get().NotificationsClient)
}

func (noopSender) SendSyncResult(_ context.Context, _ string, _ api.SyncResult) {}

func (s cloudEventsSender) SendSyncResult(ctx context.Context, ownerID string, result api.SyncResult) {
	eventName := DomainSyncCompleted
	if result.Details == nil {
		eventName = DomainSyncFailed
	}

	e, err := newSyncEvent(eventName, ownerID, result)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to build notification event")
		return
	}

	if sendResult := s.client.Send(cloudevents.WithEncodingStructured(ctx), e); cloudevents.IsUndelivered(sendResult) {
		log.Ctx(ctx).Error().Err(sendResult).Msg("Notification message failed to send")
	} else {
		log.Ctx(ctx).Debug().Msgf("Notification message accepted: %t", cloudevents.IsACK(sendResult))
	}
}

func newSyncEvent(eventName EventName, ownerID string, result api.SyncResult) (cloudevents.Event, error) {
	e := cloudevents.NewEvent()
	e.SetSource(eventSource)
	e.SetID(uuid.NewString())
	e.SetType(eventTypePrefix + eventName.String())
	e.SetSubject("urn:redhat:subject:console:domain-sync:" + eventName.String())
	e.SetTime(time.Now())
	e.SetExtension("redhatorgid", ownerID)

	data := DomainSyncEvent{
		OrgID:   ownerID,
		Success: result.Success,
		Message: result.Message,
	}
	if result.Details != nil {
		data.Added = result.Details.Added
		data.Updated = result.Details.Updated
		data.Errors = result.Details.Errors
	}
	if result.Error != "" {
		data.Errors = append(data.Errors, result.Error)
	}
	err := e.SetData(cloudevents.ApplicationJSON, data)
	return e, err
}
