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

package logging

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUnitEntryString(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 11, 12, 0, time.UTC)
	var testCases = []struct {
		name         string
		entry        Entry
		wantSeverity string
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "defaultSeverity",
			entry:        Entry{MicroserviceName: "instancesize", Message: "start"},
			wantSeverity: "INFO",
			wantContains: []string{`"microservice_name":"instancesize"`, `"message":"start"`},
			wantAbsent:   []string{"aws_request_id", "now", "latency_seconds"},
		},
		{
			name: "evaluated",
			entry: Entry{
				MicroserviceName: "instancesize",
				Severity:         "NOTICE",
				Message:          "evaluated",
				RequestID:        "req-1",
				ResourceID:       "i-abc",
				ComplianceType:   "NON_COMPLIANT",
				Now:              &now,
			},
			wantSeverity: "NOTICE",
			wantContains: []string{`"aws_request_id":"req-1"`, `"resource_id":"i-abc"`, `"compliance_type":"NON_COMPLIANT"`, `"now":"2024-03-05T10:11:12Z"`},
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := tc.entry.String()
			var decoded map[string]interface{}
			if err := json.Unmarshal([]byte(result), &decoded); err != nil {
				t.Fatalf("Entry should render valid JSON %v %s", err, result)
			}
			if decoded["severity"] != tc.wantSeverity {
				t.Errorf("Want severity '%s' got '%v'", tc.wantSeverity, decoded["severity"])
			}
			for _, want := range tc.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("Entry should contains '%s' and is '%s'", want, result)
				}
			}
			for _, absent := range tc.wantAbsent {
				if _, ok := decoded[absent]; ok {
					t.Errorf("Entry should NOT contains '%s' and is '%s'", absent, result)
				}
			}
		})
	}
}
