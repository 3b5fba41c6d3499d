package domain

type Penalty struct {
	Amount float64 `json:"amount"`
}

type Reward struct {
	Amount float64 `json:"amount"`
}

// EarningsRecord is one driver's payout line in the dataset. Loaded once at
// startup and read-only from then on.
type EarningsRecord struct {
	DriverID      string    `json:"driver_id" gorm:"primaryKey;column:driver_id"`
	GrossEarnings float64   `json:"gross_earnings"`
	Expenses      float64   `json:"expenses"`
	Penalties     []Penalty `json:"penalties,omitempty" gorm:"serializer:json"`
	Rewards       []Reward  `json:"rewards,omitempty" gorm:"serializer:json"`
	Reason        string    `json:"reason,omitempty"`
}

// EarningsBreakdown is derived per request, never stored.
type EarningsBreakdown struct {
	DriverID string  `json:"driver_id"`
	Gross    float64 `json:"gross"`
	Expenses float64 `json:"expenses"`
	Penalty  float64 `json:"penalty"`
	Rewards  float64 `json:"rewards"`
	Net      float64 `json:"net"` // may be negative, no clamping
	Reason   string  `json:"reason,omitempty"`
}

// Breakdown sums the record into the derived view.
// net = gross − expenses − Σpenalties + Σrewards.
func (r *EarningsRecord) Breakdown() *EarningsBreakdown {
	var penalty, rewards float64
	for _, p := range r.Penalties {
		penalty += p.Amount
	}
	for _, w := range r.Rewards {
		rewards += w.Amount
	}
	return &EarningsBreakdown{
		DriverID: r.DriverID,
		Gross:    r.GrossEarnings,
		Expenses: r.Expenses,
		Penalty:  penalty,
		Rewards:  rewards,
		Net:      r.GrossEarnings - r.Expenses - penalty + rewards,
		Reason:   r.Reason,
	}
}
