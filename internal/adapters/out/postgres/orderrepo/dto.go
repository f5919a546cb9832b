// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Tracking code and slip number carry unique indexes; duplicate inserts
// surface as conflicts to the caller.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID         string    `gorm:"uniqueIndex"`
	SlipNo             string    `gorm:"uniqueIndex"`
	Date               time.Time `gorm:"index"`
	CustomerName       string
	Phone              string
	Address            string
	Pincode            string
	CourierPaidExtra   float64
	CourierCostExpense float64
	PackingCostExpense float64
	AgentID            *uuid.UUID `gorm:"type:uuid;index"`
	PartnerID          *uuid.UUID `gorm:"type:uuid;index"`
	EnteredByID        uuid.UUID  `gorm:"type:uuid;index"`
	Status             string     `gorm:"index"`
	TotalPaid          float64
	Profit             float64
	CommissionPct      float64
	CommissionAmount   float64
	CreatedAt          time.Time

	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one product row owned by an order.
type LineItemDTO struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	Cost    float64
	Price   float64
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		TrackingID:         aggregate.TrackingID(),
		SlipNo:             aggregate.SlipNo(),
		Date:               aggregate.Date(),
		CustomerName:       aggregate.Customer().Name,
		Phone:              aggregate.Customer().Phone,
		Address:            aggregate.Customer().Address,
		Pincode:            aggregate.Customer().Pincode,
		CourierPaidExtra:   aggregate.Costs().CourierPaidExtra,
		CourierCostExpense: aggregate.Costs().CourierCostExpense,
		PackingCostExpense: aggregate.Costs().PackingCostExpense,
		EnteredByID:        aggregate.EnteredByID().Bytes(),
		Status:             aggregate.Status().String(),
		TotalPaid:          aggregate.Financials().TotalPaid,
		Profit:             aggregate.Financials().Profit,
		CommissionPct:      aggregate.Financials().CommissionPct,
		CommissionAmount:   aggregate.Financials().CommissionAmount,
	}

	if id := aggregate.AgentID(); id != nil {
		raw := id.Bytes()
		dto.AgentID = &raw
	}
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		dto.PartnerID = &raw
	}

	for _, li := range aggregate.LineItems() {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			OrderID: dto.ID,
			Name:    li.Name(),
			Cost:    li.Cost(),
			Price:   li.Price(),
		})
	}
	return dto
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	enteredByID, err := kernel.UUIDFromBytes(dto.EnteredByID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := optionalUUID(dto.AgentID)
	if err != nil {
		return nil, err
	}
	partnerID, err := optionalUUID(dto.PartnerID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		item, itemErr := order.NewLineItem(li.Name, li.Cost, li.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(
		id,
		dto.TrackingID,
		dto.SlipNo,
		dto.Date,
		order.Customer{
			Name:    dto.CustomerName,
			Phone:   dto.Phone,
			Address: dto.Address,
			Pincode: dto.Pincode,
		},
		lineItems,
		order.Costs{
			CourierPaidExtra:   dto.CourierPaidExtra,
			CourierCostExpense: dto.CourierCostExpense,
			PackingCostExpense: dto.PackingCostExpense,
		},
		agentID,
		partnerID,
		enteredByID,
		status,
		order.Financials{
			TotalPaid:        dto.TotalPaid,
			Profit:           dto.Profit,
			CommissionPct:    dto.CommissionPct,
			CommissionAmount: dto.CommissionAmount,
		},
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
