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
	"testing"
)

func TestUnitInstanceSpecString(t *testing.T) {
	var testCases = []struct {
		name         string
		instanceSpec InstanceSpec
		want         string
	}{
		{
			name:         "m5.large",
			instanceSpec: InstanceSpec{InstanceType: "m5.large", VCPUs: 2, MemoryMiB: 8192, MemoryGiB: 8},
			want:         "m5.large 2 vCPUs 8.0 GiB",
		},
		{
			name:         "t2.nano",
			instanceSpec: InstanceSpec{InstanceType: "t2.nano", VCPUs: 1, MemoryMiB: 512, MemoryGiB: 0.5},
			want:         "t2.nano 1 vCPUs 512 MiB",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := tc.instanceSpec.String()
			if tc.want != result {
				t.Errorf("Want '%s' have '%s'", tc.want, result)
			}
		})
	}
}
