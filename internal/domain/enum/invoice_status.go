package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// InvoiceStatus represents the lifecycle status of a fee invoice
type InvoiceStatus int

const (
	InvoiceStatusDraft     InvoiceStatus = 0
	InvoiceStatusPending   InvoiceStatus = 1
	InvoiceStatusPaid      InvoiceStatus = 2
	InvoiceStatusOverdue   InvoiceStatus = 3
	InvoiceStatusCancelled InvoiceStatus = 4
)

func (s InvoiceStatus) String() string {
	names := [...]string{"Draft", "Pending", "Paid", "Overdue", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

// ParseInvoiceStatus converts a status name (case-insensitive) into an
// InvoiceStatus.
func ParseInvoiceStatus(name string) (InvoiceStatus, error) {
	switch strings.ToLower(name) {
	case "draft":
		return InvoiceStatusDraft, nil
	case "pending":
		return InvoiceStatusPending, nil
	case "paid":
		return InvoiceStatusPaid, nil
	case "overdue":
		return InvoiceStatusOverdue, nil
	case "cancelled":
		return InvoiceStatusCancelled, nil
	default:
		return InvoiceStatusDraft, fmt.Errorf("unknown invoice status %q", name)
	}
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = InvoiceStatusDraft
	case "Pending":
		*s = InvoiceStatusPending
	case "Paid":
		*s = InvoiceStatusPaid
	case "Overdue":
		*s = InvoiceStatusOverdue
	case "Cancelled":
		*s = InvoiceStatusCancelled
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
