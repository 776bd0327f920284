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

package acs

import (
	"encoding/json"
	"fmt"

	"github.com/BrunoReboul/ramaws/utilities/erm"
)

// ParseInvokingEvent decode the invokingEvent JSON string of an AWS Config rule event
func ParseInvokingEvent(rawInvokingEvent *string) (invokingEvent InvokingEvent, err error) {
	raw, err := erm.Required("invokingEvent", rawInvokingEvent)
	if err != nil {
		return invokingEvent, err
	}
	err = json.Unmarshal([]byte(raw), &invokingEvent)
	if err != nil {
		return invokingEvent, fmt.Errorf("json.Unmarshal invokingEvent %w", err)
	}
	return invokingEvent, nil
}
