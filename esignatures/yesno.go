package esignatures

import (
	"encoding/json"
	"fmt"
)

// YesNo is a boolean that travels over the wire as "yes" or "no".
type YesNo bool

func (b YesNo) String() string {
	if b {
		return "yes"
	}
	return "no"
}

func (b YesNo) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *YesNo) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("yes/no flag must be a string: %w", err)
	}
	switch s {
	case "yes":
		*b = true
	case "no", "":
		*b = false
	default:
		return fmt.Errorf("invalid yes/no flag %q", s)
	}
	return nil
}
