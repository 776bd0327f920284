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
	"github.com/dustin/go-humanize"
)

// MiBToGiB converts mebibytes to gibibytes, binary units: 1024 MiB is 1 GiB
func MiBToGiB(sizeInMiB int64) float64 {
	return float64(sizeInMiB) * humanize.MiByte / humanize.GiByte
}
