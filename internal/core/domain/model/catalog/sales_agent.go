package catalog

import (
	"errors"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
)

// ErrSalesAgentIsNotConstructed is returned when a SalesAgent instance was
// not created through NewSalesAgent or RestoreSalesAgent.
var ErrSalesAgentIsNotConstructed = errors.New("SalesAgent must be created via NewSalesAgent constructor")

// SalesAgent is a referral/sales person earning a commission on order profit.
// The rate stored here is the agent's current default; each order captures a
// snapshot of the rate in effect when the order is saved.
type SalesAgent struct {
	id     kernel.UUID
	name   string
	rate   float64
	userID *kernel.UUID

	isConstructed bool
}

// NewSalesAgent creates a validated SalesAgent. rate is the default
// commission percentage (0-100). userID optionally links the agent to a staff
// login so the staff member's own entries accrue commission automatically.
func NewSalesAgent(id kernel.UUID, name string, rate float64, userID *kernel.UUID) (*SalesAgent, error) {
	a := &SalesAgent{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRate(rate),
		a.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreSalesAgent reconstructs a SalesAgent from persistence.
func RestoreSalesAgent(id kernel.UUID, name string, rate float64, userID *kernel.UUID) (*SalesAgent, error) {
	return NewSalesAgent(id, name, rate, userID)
}

// Validate ensures the SalesAgent was created via its constructor.
func (a *SalesAgent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrSalesAgentIsNotConstructed
	}
	return nil
}

// ID returns the agent's unique identifier.
func (a *SalesAgent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *SalesAgent) Name() string {
	return a.name
}

// Rate returns the agent's current default commission percentage.
func (a *SalesAgent) Rate() float64 {
	return a.rate
}

// UserID returns the linked login identity, or nil if unlinked.
func (a *SalesAgent) UserID() *kernel.UUID {
	return a.userID
}

// Rename updates the agent's display name and default commission rate.
// Commission snapshots already stored on orders are not touched.
func (a *SalesAgent) Rename(name string, rate float64) error {
	return errors.Join(
		a.setName(name),
		a.setRate(rate),
	)
}

func (a *SalesAgent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *SalesAgent) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("sales agent name is required")
	}
	a.name = name
	return nil
}

func (a *SalesAgent) setRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return errs.NewValidationError("commission rate must be between 0 and 100")
	}
	a.rate = rate
	return nil
}

func (a *SalesAgent) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	a.userID = userID
	return nil
}
