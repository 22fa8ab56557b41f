// Package orderrepo provides the data transfer objects and mapping functions
// for order persistence. An order row carries the lifecycle state and a
// version counter; its lines live in a child table and are frozen at
// placement.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Code carries a unique index; Version backs the compare-and-set on status
// transitions.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code             string    `gorm:"uniqueIndex"`
	ConsumerID       uuid.UUID `gorm:"type:uuid;index"`
	ShopID           uuid.UUID `gorm:"type:uuid;index"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"index"`
	TotalBill        float64
	DeliveryAddress  string
	PaymentMethod    string
	PaymentStatus    string
	Version          int
	CreatedAt        time.Time
	Lines            []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one frozen line of an order. Position preserves the order
// the items held in the cart at placement.
type OrderLineDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	ItemID      uuid.UUID `gorm:"type:uuid"`
	Name        string
	PriceUnit   string
	PriceAmount float64
	Quantity    int
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     aggregate.ID().Bytes(),
			Position:    i,
			ItemID:      line.ItemID().Bytes(),
			Name:        line.Name(),
			PriceUnit:   line.Price().Unit().String(),
			PriceAmount: line.Price().Amount(),
			Quantity:    line.Quantity(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Code:             aggregate.Code().String(),
		ConsumerID:       aggregate.ConsumerID().Bytes(),
		ShopID:           aggregate.ShopID().Bytes(),
		DeliveryPersonID: deliveryPersonID,
		Status:           aggregate.Status().String(),
		TotalBill:        aggregate.TotalBill(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PaymentMethod:    aggregate.Payment().Method(),
		PaymentStatus:    aggregate.Payment().Status().String(),
		Version:          aggregate.Version(),
		Lines:            lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := order.OrderCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}
	consumerID, err := kernel.UUIDFromBytes(dto.ConsumerID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		assigned, idErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryPersonID = &assigned
	}

	lines := make([]order.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		itemID, idErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		unit, unitErr := kernel.PriceUnitFromString(lineDTO.PriceUnit)
		if unitErr != nil {
			return nil, unitErr
		}
		price, priceErr := kernel.NewPrice(unit, lineDTO.PriceAmount)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLineItem(itemID, lineDTO.Name, price, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	payment, err := order.RestorePayment(dto.PaymentMethod, paymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		code,
		consumerID,
		shopID,
		deliveryPersonID,
		lines,
		dto.DeliveryAddress,
		payment,
		status,
		dto.Version,
	)
}
