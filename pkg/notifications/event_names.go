package notifications

type EventName string

const (
	DomainSyncCompleted EventName = "domain-sync-completed"
	DomainSyncFailed    EventName = "domain-sync-failed"
)

func (d EventName) String() string {
	return string(d)
}
