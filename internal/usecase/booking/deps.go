package booking

import "github.com/motorcare/vehicle-service-api/internal/audit"

// AuditSink decouples use cases from the concrete dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}
