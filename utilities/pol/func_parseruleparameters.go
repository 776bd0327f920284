// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pol

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BrunoReboul/ramaws/utilities/erm"
)

const (
	cpuLimitKey = "cpu-limit"
	ramLimitKey = "ram-limit"
)

// ParseRuleParameters decode the ruleParameters JSON string into limits
func ParseRuleParameters(rawRuleParameters *string) (limits Limits, err error) {
	raw, err := erm.Required("ruleParameters", rawRuleParameters)
	if err != nil {
		return limits, err
	}
	var ruleParameters map[string]json.RawMessage
	err = json.Unmarshal([]byte(raw), &ruleParameters)
	if err != nil {
		return limits, fmt.Errorf("json.Unmarshal ruleParameters %w", err)
	}
	limits.CPULimit, err = getLimit(ruleParameters, cpuLimitKey)
	if err != nil {
		return limits, err
	}
	limits.RAMLimit, err = getLimit(ruleParameters, ramLimitKey)
	if err != nil {
		return limits, err
	}
	return limits, nil
}

// getLimit accepts a JSON number or a string holding a number
func getLimit(ruleParameters map[string]json.RawMessage, key string) (float64, error) {
	rawValue, ok := ruleParameters[key]
	if !ok || string(rawValue) == "null" {
		return 0, &erm.MissingFieldError{Field: key}
	}
	var value interface{}
	err := json.Unmarshal(rawValue, &value)
	if err != nil {
		return 0, fmt.Errorf("json.Unmarshal %s %w", key, err)
	}
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, &erm.MissingFieldError{Field: key}
		}
		limit, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%s is not a number '%s' %w", key, v, err)
		}
		// ParseFloat accepts NaN and Inf, no instance could ever exceed them
		if math.IsNaN(limit) || math.IsInf(limit, 0) {
			return 0, fmt.Errorf("%s is not a number '%s'", key, v)
		}
		return limit, nil
	}
	return 0, fmt.Errorf("%s is not a number %s", key, string(rawValue))
}
