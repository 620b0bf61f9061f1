package order

type Status string

const (
	StatusNew       Status = "New"
	StatusAccepted  Status = "Accepted"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusRejected  Status = "Rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusAccepted, StatusPreparing, StatusReady, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusReady || s == StatusRejected
}

// IsWaiting reports whether a student is still waiting on the order.
func (s Status) IsWaiting() bool {
	return s == StatusNew || s == StatusAccepted || s == StatusPreparing
}

var transitions = map[Status][]Status{
	StatusNew:       {StatusAccepted, StatusRejected},
	StatusAccepted:  {StatusPreparing},
	StatusPreparing: {StatusReady},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllStatuses lists statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusAccepted, StatusPreparing, StatusReady, StatusRejected}
}

// Policy selects between the lenient reference rules and the stricter engine checks.
type Policy struct {
	// StrictAccept refuses Accept when any line exceeds current stock.
	StrictAccept bool
	// EnforceSlotCapacity refuses new orders for a slot already at capacity.
	EnforceSlotCapacity bool
	// ReleaseOnReject gives the slot booking back when an order is rejected.
	ReleaseOnReject bool
}

func DefaultPolicy() Policy {
	return Policy{StrictAccept: true}
}
