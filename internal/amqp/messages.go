package amqp

import (
	"encoding/json"
	"time"
)

// VendorActivityMessage notifies workers that a vendor record changed.
// It carries identifiers only; consumers fetch the current record from the
// store, so stale deliveries are harmless.
type VendorActivityMessage struct {
	VendorID  string    `json:"vendor_id"`
	CoupleID  string    `json:"couple_id,omitempty"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewVendorActivityMessage creates an activity message stamped with now.
func NewVendorActivityMessage(vendorID, coupleID, action string) *VendorActivityMessage {
	return &VendorActivityMessage{
		VendorID:  vendorID,
		CoupleID:  coupleID,
		Action:    action,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *VendorActivityMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// VendorActivityMessageFromJSON creates a message from JSON bytes
func VendorActivityMessageFromJSON(data []byte) (*VendorActivityMessage, error) {
	var msg VendorActivityMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.VendorID == "" {
		return nil, errEmptyVendorID
	}
	return &msg, nil
}
