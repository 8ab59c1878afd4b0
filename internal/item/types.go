package item

import (
	"time"

	"github.com/google/uuid"

	"trade-custody/internal/model"
)

// --- Custody Status ---

// Status is where a traded item physically is.
type Status string

const (
	StatusPending   Status = "pending"   // still with the original owner
	StatusAtOrg     Status = "at_org"    // handed to the organizers
	StatusDelivered Status = "delivered" // handed to the receiving member
)

// IsValid reports whether s is one of the three custody statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAtOrg, StatusDelivered:
		return true
	}
	return false
}

// --- Requested Action ---

// Action is the caller-facing verb of a status update. It is not a Status:
// the mapping between the two goes through Transition.
type Action string

const (
	ActionDelivered       Action = "delivered"
	ActionDeliveredToUser Action = "delivered_to_user"
	ActionPending         Action = "pending"
)

// IsValid reports whether a is a recognised action.
func (a Action) IsValid() bool {
	switch a {
	case ActionDelivered, ActionDeliveredToUser, ActionPending:
		return true
	}
	return false
}

// --- Item Domain Model ---

// Item is a traded game in custody of the event.
type Item struct {
	ID        int64
	Title     string
	Status    Status
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type UpdateStatusInput struct {
	ItemIDs      []int64
	Action       Action
	ActingUserID int64
	ActingRole   model.Role
}

type ListInput struct {
	Status Status
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

// UpdatedItem is reported for every item found in a batch, changed or not.
type UpdatedItem struct {
	ID        int64
	NewStatus Status
	Title     string
}

type UpdateStatusOutput struct {
	UpdatedItems []UpdatedItem
}

type DetailOutput struct {
	Item Item
}

type ListOutput struct {
	Items  []Item
	Total  int
	Limit  int
	Offset int
}

// --- Audit ---

// AuditEntry records one applied transition.
type AuditEntry struct {
	ID             uuid.UUID
	BatchID        uuid.UUID
	ActorID        int64
	ActorRole      model.Role
	ItemID         int64
	Action         Action
	PreviousStatus Status
	NewStatus      Status
	RecordedAt     time.Time
}

type AuditsOutput struct {
	Entries []AuditEntry
}
