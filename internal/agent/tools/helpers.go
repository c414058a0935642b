package tools

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cashback-advisor/internal/agent"
)

// decodeParams maps the model's loose argument map onto a typed input struct.
func decodeParams(params map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("%w: %v", agent.ErrInvalidArguments, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", agent.ErrInvalidArguments, err)
	}
	return nil
}

// dollars renders an amount as "$<amount>" without trailing zeros.
func dollars(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// percent renders a rate as "<rate>%".
func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func categoryEnum() []string {
	return []string{"fuel", "food", "groceries", "travel", "other"}
}
