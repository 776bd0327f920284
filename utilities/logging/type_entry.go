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
	"log"
	"time"
)

// Entry defines a structured log entry, one JSON object per line
// https://docs.aws.amazon.com/lambda/latest/dg/monitoring-cloudwatchlogs-advanced.html
type Entry struct {
	MicroserviceName  string     `json:"microservice_name"`
	InstanceName      string     `json:"instance_name"`
	Environment       string     `json:"environment"`
	Severity          string     `json:"severity,omitempty"`
	Message           string     `json:"message"`
	Description       string     `json:"description,omitempty"`
	Now               *time.Time `json:"now,omitempty"`
	InitID            string     `json:"init_id,omitempty"`
	RequestID         string     `json:"aws_request_id,omitempty"`
	ConfigRuleName    string     `json:"config_rule_name,omitempty"`
	ResourceType      string     `json:"resource_type,omitempty"`
	ResourceID        string     `json:"resource_id,omitempty"`
	ComplianceType    string     `json:"compliance_type,omitempty"`
	CaptureTimestamp  *time.Time `json:"capture_timestamp,omitempty"`
	LatencySeconds    float64    `json:"latency_seconds,omitempty"`
	LatencyE2ESeconds float64    `json:"latency_e2e_seconds,omitempty"`
}

// String renders an entry structure to the JSON format expected by CloudWatch Logs Insights.
func (e Entry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}
