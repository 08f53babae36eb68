package request_models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexBool accepts true/false, "true"/"false" and 0/1 on the wire. The
// wizard sends a real boolean but the endpoint must not assume it.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch s {
	case "true", `"true"`, "1", `"1"`:
		*b = true
		return nil
	case "false", `"false"`, "0", `"0"`, "null":
		*b = false
		return nil
	}
	return fmt.Errorf("cannot coerce %s to boolean", s)
}

func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// FlexInt accepts 7, 7.0 and "7" on the wire.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("cannot coerce empty value to integer")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = FlexInt(n)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return fmt.Errorf("cannot coerce %s to integer", s)
	}
	*i = FlexInt(int64(f))
	return nil
}

func (i FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(i))
}
