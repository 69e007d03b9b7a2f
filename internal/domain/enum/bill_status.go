package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillStatus tracks how much of a bill has been paid
type BillStatus int

const (
	BillStatusOutstanding BillStatus = 0
	BillStatusPartial     BillStatus = 1
	BillStatusPaid        BillStatus = 2
)

func (s BillStatus) String() string {
	names := [...]string{"outstanding", "partial", "paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "outstanding"
	}
	return names[s]
}

func (s BillStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BillStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BillStatus(i)
		return nil
	}
	switch str {
	case "partial":
		*s = BillStatusPartial
	case "paid":
		*s = BillStatusPaid
	default:
		*s = BillStatusOutstanding
	}
	return nil
}

func (s BillStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *BillStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BillStatusOutstanding
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = BillStatus(v)
	case int:
		*s = BillStatus(v)
	}
	return nil
}
