package delivery

import "delivery-platform/internal/domain"

// transitions is the explicit status graph. Terminal states accept no
// successor and a delivery can never go back to pending.
var transitions = map[domain.Status]map[domain.Status]bool{
	domain.StatusPending: {
		domain.StatusPreparing:  true,
		domain.StatusReady:      true,
		domain.StatusDelivering: true,
		domain.StatusDelivered:  true,
		domain.StatusCancelled:  true,
	},
	domain.StatusPreparing: {
		domain.StatusReady:      true,
		domain.StatusDelivering: true,
		domain.StatusDelivered:  true,
		domain.StatusCancelled:  true,
	},
	domain.StatusReady: {
		domain.StatusDelivering: true,
		domain.StatusDelivered:  true,
		domain.StatusCancelled:  true,
	},
	domain.StatusDelivering: {
		domain.StatusDelivered: true,
		domain.StatusCancelled: true,
	},
	domain.StatusDelivered: {},
	domain.StatusCancelled: {},
}

func canTransition(from, to domain.Status) bool {
	return transitions[from][to]
}
