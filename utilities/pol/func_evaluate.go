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
	"github.com/BrunoReboul/ramaws/utilities/aec"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// Evaluate returns NON_COMPLIANT when either the vCPU count or the memory exceeds its limit, COMPLIANT otherwise
func Evaluate(instanceSpec aec.InstanceSpec, limits Limits) types.ComplianceType {
	if float64(instanceSpec.VCPUs) > limits.CPULimit || instanceSpec.MemoryGiB > limits.RAMLimit {
		return types.ComplianceTypeNonCompliant
	}
	return types.ComplianceTypeCompliant
}
