package inventory

// Stock status classification of a quantity against two thresholds.
// Thresholds are call parameters on purpose: callers may override them
// per call and nothing is persisted per item.
const (
	StatusLow      = "low"
	StatusModerate = "moderate"
	StatusGood     = "good"
)

const (
	DefaultLowThreshold      = 10
	DefaultModerateThreshold = 50
)

type Thresholds struct {
	Low      int
	Moderate int
}

func DefaultThresholds() Thresholds {
	return Thresholds{Low: DefaultLowThreshold, Moderate: DefaultModerateThreshold}
}

// StockStatus classifies quantity: low when <= t.Low, moderate when
// <= t.Moderate, good otherwise. Bounds are inclusive.
func StockStatus(quantity int, t ...Thresholds) string {
	th := DefaultThresholds()
	if len(t) > 0 {
		th = t[0]
	}
	switch {
	case quantity <= th.Low:
		return StatusLow
	case quantity <= th.Moderate:
		return StatusModerate
	default:
		return StatusGood
	}
}

// Status is a convenience over the wrapped quantity.
func (it Item) Status(t ...Thresholds) string {
	return StockStatus(it.TotalQuantity, t...)
}
