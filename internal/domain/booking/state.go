package booking

type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseValidating           Phase = "validating"
	PhaseCheckingAvailability Phase = "checking_availability"
	PhaseFetchingPrice        Phase = "fetching_price"
	PhaseSubmitting           Phase = "submitting"
	PhaseFailed               Phase = "failed"
	PhaseSucceeded            Phase = "succeeded"
)

// State is the submission workflow's current step. Only the types below
// implement it.
type State interface {
	Phase() Phase
	sealed()
}

type Idle struct{}

type Validating struct{}

type CheckingAvailability struct{}

type FetchingPrice struct{}

type Submitting struct {
	Total Money
}

type Failed struct {
	Reason error
}

type Succeeded struct {
	Reference string
}

func (Idle) Phase() Phase                 { return PhaseIdle }
func (Validating) Phase() Phase           { return PhaseValidating }
func (CheckingAvailability) Phase() Phase { return PhaseCheckingAvailability }
func (FetchingPrice) Phase() Phase        { return PhaseFetchingPrice }
func (Submitting) Phase() Phase           { return PhaseSubmitting }
func (Failed) Phase() Phase               { return PhaseFailed }
func (Succeeded) Phase() Phase            { return PhaseSucceeded }

func (Idle) sealed()                 {}
func (Validating) sealed()           {}
func (CheckingAvailability) sealed() {}
func (FetchingPrice) sealed()        {}
func (Submitting) sealed()           {}
func (Failed) sealed()               {}
func (Succeeded) sealed()            {}

// InProgress reports whether a network step is running.
func InProgress(s State) bool {
	switch s.(type) {
	case Validating, CheckingAvailability, FetchingPrice, Submitting:
		return true
	default:
		return false
	}
}
