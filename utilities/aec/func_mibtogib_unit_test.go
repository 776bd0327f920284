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

func TestUnitMiBToGiB(t *testing.T) {
	var testCases = []struct {
		name      string
		sizeInMiB int64
		want      float64
	}{
		{name: "zero", sizeInMiB: 0, want: 0},
		{name: "oneGiB", sizeInMiB: 1024, want: 1.0},
		{name: "halfGiB", sizeInMiB: 512, want: 0.5},
		{name: "t3.micro", sizeInMiB: 1024, want: 1},
		{name: "m5.large", sizeInMiB: 8192, want: 8},
		{name: "t2.nano", sizeInMiB: 512, want: 0.5},
		{name: "notDecimal", sizeInMiB: 1000, want: 0.9765625},
		{name: "u-12tb1.metal", sizeInMiB: 12582912, want: 12288},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := MiBToGiB(tc.sizeInMiB)
			if tc.want != result {
				t.Errorf("Want %v have %v", tc.want, result)
			}
		})
	}
}
