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

package aec

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// String renders the spec for log descriptions, e.g. "m5.large 2 vCPUs 8.0 GiB"
func (instanceSpec InstanceSpec) String() string {
	if instanceSpec.MemoryMiB < 0 {
		return fmt.Sprintf("%s %d vCPUs %d MiB", instanceSpec.InstanceType, instanceSpec.VCPUs, instanceSpec.MemoryMiB)
	}
	return fmt.Sprintf("%s %d vCPUs %s", instanceSpec.InstanceType, instanceSpec.VCPUs, humanize.IBytes(uint64(instanceSpec.MemoryMiB)*humanize.MiByte))
}
