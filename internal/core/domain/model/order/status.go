package order

import (
	"fmt"

	"shipledger/internal/pkg/errs"
)

// Status represents the shipment lifecycle state of an order.
//
// Unlike a strict state machine, operators may move an order between most
// states to correct data entry; the only guarded transitions are those into
// the shipping states (Packed, Sent, Shipped), which require a real tracking
// code and a linked partner on the resulting record.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state: order recorded, payment not confirmed.
	StatusPending

	// StatusPaid indicates the customer's payment is confirmed.
	StatusPaid

	// StatusPacked indicates the parcel is packed and ready for handover.
	StatusPacked

	// StatusSent indicates the parcel was handed to the shipping partner.
	StatusSent

	// StatusShipped indicates the parcel is in transit with the partner.
	StatusShipped

	// StatusDelivered indicates successful delivery to the customer.
	StatusDelivered

	// StatusReturned indicates a failed delivery returned to the sender.
	// Returned orders are treated as a pure loss in profit aggregates.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusPaid:      "Paid",
		StatusPacked:    "Packed",
		StatusSent:      "Sent",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusReturned:  "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusPaid:      "Paid",
		StatusPacked:    "Packed",
		StatusSent:      "Sent",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusReturned:  "Returned",
	}
}

// StatusFromString parses a status name as submitted by a client or read
// from persistence. Returns a ValidationError for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValidationError(fmt.Sprintf("%q is not a valid order status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationError(fmt.Sprintf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// RequiresShippableOrder reports whether entering this status demands a real
// tracking code and a linked partner (Packed, Sent, Shipped).
func (s Status) RequiresShippableOrder() bool {
	return s == StatusPacked || s == StatusSent || s == StatusShipped
}

// IsActive reports whether the order is still in flight (not Delivered and
// not Returned). Used by dashboard counts.
func (s Status) IsActive() bool {
	return s != StatusDelivered && s != StatusReturned
}
