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
	"github.com/BrunoReboul/ramaws/utilities/erm"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// IsApplicable true when the resource still exists and is in the rule scope
func IsApplicable(item *ConfigurationItem, eventLeftScope bool) (bool, error) {
	if item == nil {
		return false, &erm.MissingFieldError{Field: "configurationItem"}
	}
	switch item.ConfigurationItemStatus {
	case types.ConfigurationItemStatusOk, types.ConfigurationItemStatusResourceDiscovered:
		return !eventLeftScope, nil
	}
	return false, nil
}
