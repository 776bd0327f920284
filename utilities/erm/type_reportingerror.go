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

package erm

import "fmt"

// ReportingError the submission of an evaluation failed
type ReportingError struct {
	Operation string
	Err       error
}

func (e *ReportingError) Error() string {
	return fmt.Sprintf("reporting failed: %s %v", e.Operation, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *ReportingError) Unwrap() error {
	return e.Err
}
