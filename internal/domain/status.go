package domain

// Status is the shared order/delivery status. A delivery reuses the order
// status values as its own state: "preparing" means "assigned to a courier".
type Status string

// List of possible order/delivery statuses
const (
	StatusPending    Status = "pending"
	StatusPreparing  Status = "preparing"
	StatusReady      Status = "ready"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var allowedStatuses = [...]Status{
	StatusPending, StatusPreparing, StatusReady,
	StatusDelivering, StatusDelivered, StatusCancelled,
}

// Valid checks if the Status is one of the allowed values
func (s Status) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status accepts no successor.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
