package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// VoucherStatus represents the lifecycle state of a cash voucher
type VoucherStatus int

const (
	VoucherStatusDraft     VoucherStatus = 0
	VoucherStatusApproved  VoucherStatus = 1
	VoucherStatusPaid      VoucherStatus = 2
	VoucherStatusCancelled VoucherStatus = 3
)

func (s VoucherStatus) String() string {
	names := [...]string{"draft", "approved", "paid", "cancelled"}
	if s < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

// IsTerminal reports whether no further transitions are allowed
func (s VoucherStatus) IsTerminal() bool {
	return s == VoucherStatusPaid || s == VoucherStatusCancelled
}

// CanTransitionTo reports whether moving to next is a legal transition.
// The machine is draft -> approved -> paid, with cancel allowed from
// draft or approved.
func (s VoucherStatus) CanTransitionTo(next VoucherStatus) bool {
	switch next {
	case VoucherStatusApproved:
		return s == VoucherStatusDraft
	case VoucherStatusPaid:
		return s == VoucherStatusApproved
	case VoucherStatusCancelled:
		return s == VoucherStatusDraft || s == VoucherStatusApproved
	default:
		return false
	}
}

func (s VoucherStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *VoucherStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = VoucherStatus(i)
		return nil
	}
	if parsed, ok := ParseVoucherStatus(str); ok {
		*s = parsed
	}
	return nil
}

// ParseVoucherStatus maps a status name to its value
func ParseVoucherStatus(s string) (VoucherStatus, bool) {
	switch s {
	case "draft":
		return VoucherStatusDraft, true
	case "approved":
		return VoucherStatusApproved, true
	case "paid":
		return VoucherStatusPaid, true
	case "cancelled":
		return VoucherStatusCancelled, true
	}
	return VoucherStatusDraft, false
}

func (s VoucherStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *VoucherStatus) Scan(value interface{}) error {
	if value == nil {
		*s = VoucherStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = VoucherStatus(v)
	case int:
		*s = VoucherStatus(v)
	}
	return nil
}
