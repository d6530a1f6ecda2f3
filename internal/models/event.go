package models

// Event types published to the message bus.
const (
	EventReservationCreated = "reservation.created"
	EventReservationUpdated = "reservation.updated"
	EventReservationDeleted = "reservation.deleted"
	EventPaymentCreated     = "payment.created"
)

// Event describes a change to a booking record, published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier of the event.
	Type      string `json:"type"`       // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix time (seconds) when the event was produced.
	EntityID  int64  `json:"entity_id"`  // EntityID is the id of the reservation or payment.
	UserID    int64  `json:"user_id"`    // UserID is the owner of the record.
	RoomID    int64  `json:"room_id,omitempty"`
	Payload   any    `json:"payload,omitempty"` // Payload is the record after the change, if any.
}
