package domain

import "github.com/google/uuid"

// ReceiptStatus is the outcome of a mutating call.
type ReceiptStatus string

const (
	ReceiptSuccess  ReceiptStatus = "success"
	ReceiptReverted ReceiptStatus = "reverted"
)

// Receipt is returned for every mutating call. Events are only present
// on success; a reverted call has no effects.
type Receipt struct {
	ID     uuid.UUID
	Status ReceiptStatus
	Events []Event
	Err    error
}

// NewReceipt builds a receipt for the committed events or the error that
// reverted the call.
func NewReceipt(events []Event, err error) *Receipt {
	r := &Receipt{ID: uuid.New(), Status: ReceiptSuccess, Events: events}
	if err != nil {
		r.Status = ReceiptReverted
		r.Events = nil
		r.Err = err
	}
	return r
}
