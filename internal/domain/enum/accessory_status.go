package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AccessoryStatus represents the stock status of an accessory line
type AccessoryStatus int

const (
	AccessoryStatusInStock     AccessoryStatus = 0
	AccessoryStatusOutOfStock  AccessoryStatus = 1
	AccessoryStatusUnavailable AccessoryStatus = 2
)

func (s AccessoryStatus) String() string {
	return [...]string{"in_stock", "out_of_stock", "unavailable"}[s]
}

func (s AccessoryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AccessoryStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = AccessoryStatus(i)
		return nil
	}
	switch str {
	case "in_stock":
		*s = AccessoryStatusInStock
	case "out_of_stock":
		*s = AccessoryStatusOutOfStock
	case "unavailable":
		*s = AccessoryStatusUnavailable
	}
	return nil
}

// ParseAccessoryStatus maps a query/JSON string to its status
func ParseAccessoryStatus(s string) (AccessoryStatus, bool) {
	switch s {
	case "in_stock":
		return AccessoryStatusInStock, true
	case "out_of_stock":
		return AccessoryStatusOutOfStock, true
	case "unavailable":
		return AccessoryStatusUnavailable, true
	}
	return AccessoryStatusInStock, false
}

func (s AccessoryStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *AccessoryStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AccessoryStatusInStock
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = AccessoryStatus(v)
	case int:
		*s = AccessoryStatus(v)
	}
	return nil
}
