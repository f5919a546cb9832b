package catalog

import (
	"errors"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
)

// ErrPartnerIsNotConstructed is returned when a Partner instance was not
// created through NewPartner or RestorePartner.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

// Partner is an external shipping service provider. Orders link to a partner
// to record which service carried the shipment; the partner is later billed
// its accumulated courier fees.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty (and is unique at the store level)
//   - Default fee rate must not be negative
type Partner struct {
	id     kernel.UUID
	name   string
	rate   float64
	userID *kernel.UUID

	isConstructed bool
}

// NewPartner creates a validated Partner. userID optionally links the partner
// to a login identity; a partner user only sees orders carried by its own
// partner record.
func NewPartner(id kernel.UUID, name string, rate float64, userID *kernel.UUID) (*Partner, error) {
	p := &Partner{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRate(rate),
		p.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a Partner from persistence.
func RestorePartner(id kernel.UUID, name string, rate float64, userID *kernel.UUID) (*Partner, error) {
	return NewPartner(id, name, rate, userID)
}

// Validate ensures the Partner was created via its constructor.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Rate returns the partner's default fee rate.
func (p *Partner) Rate() float64 {
	return p.rate
}

// UserID returns the linked login identity, or nil if unlinked.
func (p *Partner) UserID() *kernel.UUID {
	return p.userID
}

// Rename updates the partner's name and default fee rate.
func (p *Partner) Rename(name string, rate float64) error {
	if err := errors.Join(p.setName(name), p.setRate(rate)); err != nil {
		return err
	}
	return nil
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("partner name is required")
	}
	p.name = name
	return nil
}

func (p *Partner) setRate(rate float64) error {
	if rate < 0 {
		return errs.NewValidationError("partner rate must not be negative")
	}
	p.rate = rate
	return nil
}

func (p *Partner) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	p.userID = userID
	return nil
}
