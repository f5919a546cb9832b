// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence.
package invoicerepo

import (
	"time"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoices.
// Exactly one of Recipient or EntityID is set, matching the subject kind.
type InvoiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectKind string    `gorm:"index"`
	Recipient   *string
	EntityID    *uuid.UUID `gorm:"type:uuid;index"`
	Amount      float64
	StartDate   *time.Time
	EndDate     *time.Time
	Month       string
	Status      string `gorm:"index"`
	PaymentMode *string
	CreatedAt   time.Time
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(inv *billing.Invoice) InvoiceDTO {
	dto := InvoiceDTO{
		ID:          inv.ID().Bytes(),
		SubjectKind: inv.Subject().Kind().String(),
		Amount:      inv.Amount(),
		StartDate:   inv.StartDate(),
		EndDate:     inv.EndDate(),
		Month:       inv.Month(),
		Status:      inv.Status().String(),
		CreatedAt:   inv.CreatedAt(),
	}

	if inv.Subject().Kind() == billing.SubjectInternal {
		recipient := string(inv.Subject().Recipient())
		dto.Recipient = &recipient
	} else {
		entityID := inv.Subject().EntityID().Bytes()
		dto.EntityID = &entityID
	}

	if mode := string(inv.PaymentMode()); mode != "" {
		dto.PaymentMode = &mode
	}
	return dto
}

// toDomain converts a database DTO to an invoice aggregate.
func toDomain(dto InvoiceDTO) (*billing.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	subject, err := subjectFromDTO(dto)
	if err != nil {
		return nil, err
	}

	status, err := billing.InvoiceStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var mode billing.PaymentMode
	if dto.PaymentMode != nil {
		mode = billing.PaymentMode(*dto.PaymentMode)
	}

	return billing.RestoreInvoice(id, subject, dto.Amount,
		dto.StartDate, dto.EndDate, dto.Month, status, mode, dto.CreatedAt)
}

func subjectFromDTO(dto InvoiceDTO) (billing.Subject, error) {
	kind, err := billing.SubjectKindFromString(dto.SubjectKind)
	if err != nil {
		return billing.Subject{}, err
	}

	switch kind {
	case billing.SubjectInternal:
		var recipient billing.Recipient
		if dto.Recipient != nil {
			recipient = billing.Recipient(*dto.Recipient)
		}
		return billing.SubjectForRecipient(recipient)
	case billing.SubjectPartner:
		entityID, idErr := entityIDFromDTO(dto)
		if idErr != nil {
			return billing.Subject{}, idErr
		}
		return billing.SubjectForPartner(entityID)
	default:
		entityID, idErr := entityIDFromDTO(dto)
		if idErr != nil {
			return billing.Subject{}, idErr
		}
		return billing.SubjectForAgent(entityID)
	}
}

func entityIDFromDTO(dto InvoiceDTO) (kernel.UUID, error) {
	if dto.EntityID == nil {
		return kernel.UUID{}, kernel.ErrUUIDIsNotConstructed
	}
	return kernel.UUIDFromBytes((*dto.EntityID)[:])
}
