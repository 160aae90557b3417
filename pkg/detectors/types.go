package detectors

// Signal is the outcome of a single detector pass: a boolean flag plus an
// optional short reason naming the triggering pattern class.
type Signal struct {
	Flagged bool
	Reason  string
}
