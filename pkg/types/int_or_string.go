package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// IntOrString is an identifier that may arrive either as a JSON number or as
// a numeric string, as HTML <select> values do.
type IntOrString int64

func (i *IntOrString) UnmarshalJSON(b []byte) error {
	var asInt int64
	if err := json.Unmarshal(b, &asInt); err == nil {
		*i = IntOrString(asInt)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		asStr = strings.TrimSpace(asStr)
		if asStr == "" {
			*i = 0
			return nil
		}

		parsed, err := strconv.ParseInt(asStr, 10, 64)
		if err != nil {
			return err
		}
		*i = IntOrString(parsed)
		return nil
	}

	return errors.New("invalid int or string")
}

func (i IntOrString) Int64() int64 {
	return int64(i)
}
