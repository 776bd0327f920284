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
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// InvokingEvent decoded content of the invokingEvent string of an AWS Config rule event
type InvokingEvent struct {
	MessageType              *string                   `json:"messageType"`
	ConfigurationItem        *ConfigurationItem        `json:"configurationItem"`
	ConfigurationItemSummary *ConfigurationItemSummary `json:"configurationItemSummary"`
	NotificationCreationTime *time.Time                `json:"notificationCreationTime,omitempty"`
	RecordVersion            string                    `json:"recordVersion,omitempty"`
}

// ConfigurationItemSummary sent in place of the configuration item when the notification is oversized
type ConfigurationItemSummary struct {
	ChangeType                   string                        `json:"changeType,omitempty"`
	ConfigurationItemVersion     string                        `json:"configurationItemVersion,omitempty"`
	ConfigurationItemCaptureTime *time.Time                    `json:"configurationItemCaptureTime"`
	ConfigurationStateID         json.Number                   `json:"configurationStateId,omitempty"`
	AWSAccountID                 string                        `json:"awsAccountId,omitempty"`
	ConfigurationItemStatus      types.ConfigurationItemStatus `json:"configurationItemStatus,omitempty"`
	ResourceType                 *string                       `json:"resourceType"`
	ResourceID                   *string                       `json:"resourceId"`
	ResourceName                 string                        `json:"resourceName,omitempty"`
	ARN                          string                        `json:"ARN,omitempty"`
	AWSRegion                    string                        `json:"awsRegion,omitempty"`
	AvailabilityZone             string                        `json:"availabilityZone,omitempty"`
	ConfigurationStateMD5Hash    string                        `json:"configurationStateMd5Hash,omitempty"`
	ResourceCreationTime         *time.Time                    `json:"resourceCreationTime,omitempty"`
}
