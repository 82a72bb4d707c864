package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PhoneStatus represents the stock status of a phone unit
type PhoneStatus int

const (
	PhoneStatusInStock     PhoneStatus = 0
	PhoneStatusSold        PhoneStatus = 1
	PhoneStatusTransferred PhoneStatus = 2
	PhoneStatusUnavailable PhoneStatus = 3
)

func (s PhoneStatus) String() string {
	return [...]string{"in_stock", "sold", "transferred", "unavailable"}[s]
}

func (s PhoneStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PhoneStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PhoneStatus(i)
		return nil
	}
	switch str {
	case "in_stock":
		*s = PhoneStatusInStock
	case "sold":
		*s = PhoneStatusSold
	case "transferred":
		*s = PhoneStatusTransferred
	case "unavailable":
		*s = PhoneStatusUnavailable
	}
	return nil
}

// ParsePhoneStatus maps a query/JSON string to its status
func ParsePhoneStatus(s string) (PhoneStatus, bool) {
	switch s {
	case "in_stock":
		return PhoneStatusInStock, true
	case "sold":
		return PhoneStatusSold, true
	case "transferred":
		return PhoneStatusTransferred, true
	case "unavailable":
		return PhoneStatusUnavailable, true
	}
	return PhoneStatusInStock, false
}

func (s PhoneStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PhoneStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PhoneStatusInStock
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PhoneStatus(v)
	case int:
		*s = PhoneStatus(v)
	}
	return nil
}
