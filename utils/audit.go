package utils

import (
	"log"
)

// AuditEvent is the tuple handed to the audit sink for every
// security-relevant operation.
type AuditEvent struct {
	Actor    string
	Action   string
	Resource string
	Status   string
	Details  string
}

// Audit hands an event to the audit sink. Persistence lives behind this
// fire-and-forget boundary; the default sink is the process log and an
// emission never blocks or fails the calling operation.
func Audit(event AuditEvent) {
	log.Printf("AUDIT actor=%s action=%s resource=%s status=%s details=%s",
		event.Actor, event.Action, event.Resource, event.Status, event.Details)
}
