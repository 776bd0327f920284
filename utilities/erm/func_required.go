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

// Required returns the value behind a pointer or a MissingFieldError naming the field.
// A nil pointer and an empty string are absent. A boolean false or a numeric zero is present.
func Required[T any](fieldName string, value *T) (T, error) {
	var zero T
	if value == nil {
		return zero, &MissingFieldError{Field: fieldName}
	}
	if s, ok := any(*value).(string); ok && s == "" {
		return zero, &MissingFieldError{Field: fieldName}
	}
	return *value, nil
}
