package billing

import "invoicing-backend/internal/models"

// statusTransitions is the full lifecycle: draft -> sent -> paid, with
// sent -> overdue and any non-terminal state -> cancelled. paid and
// cancelled are terminal; nothing leaves them, not even a self-transition.
// There is no automatic sent -> overdue sweep; that is an explicit request.
var statusTransitions = map[string][]string{
	models.StatusDraft:     {models.StatusSent, models.StatusCancelled},
	models.StatusSent:      {models.StatusPaid, models.StatusOverdue, models.StatusCancelled},
	models.StatusOverdue:   {models.StatusPaid, models.StatusCancelled},
	models.StatusPaid:      {},
	models.StatusCancelled: {},
}

func canTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
