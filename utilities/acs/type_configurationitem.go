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

// ConfigurationItem canonical configuration item, as embedded in a configuration item change notification
type ConfigurationItem struct {
	ARN                          string                        `json:"ARN,omitempty"`
	AvailabilityZone             string                        `json:"availabilityZone,omitempty"`
	AWSAccountID                 string                        `json:"awsAccountId,omitempty"`
	AWSRegion                    string                        `json:"awsRegion,omitempty"`
	Configuration                map[string]interface{}        `json:"configuration,omitempty"`
	ConfigurationItemCaptureTime *time.Time                    `json:"configurationItemCaptureTime,omitempty"`
	ConfigurationItemStatus      types.ConfigurationItemStatus `json:"configurationItemStatus,omitempty"`
	ConfigurationItemVersion     string                        `json:"configurationItemVersion,omitempty"`
	ConfigurationStateID         json.Number                   `json:"configurationStateId,omitempty"`
	ConfigurationStateMD5Hash    string                        `json:"configurationStateMd5Hash,omitempty"`
	RelatedEvents                []string                      `json:"relatedEvents,omitempty"`
	Relationships                []Relationship                `json:"relationships,omitempty"`
	ResourceCreationTime         *time.Time                    `json:"resourceCreationTime,omitempty"`
	ResourceID                   string                        `json:"resourceId,omitempty"`
	ResourceName                 string                        `json:"resourceName,omitempty"`
	ResourceType                 string                        `json:"resourceType,omitempty"`
	SupplementaryConfiguration   map[string]interface{}        `json:"supplementaryConfiguration,omitempty"`
	Tags                         map[string]string             `json:"tags,omitempty"`
}

// Relationship link between the configuration item resource and a related resource
type Relationship struct {
	ResourceID   string `json:"resourceId,omitempty"`
	ResourceName string `json:"resourceName,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
	Name         string `json:"name,omitempty"`
}

// InstanceType returns configuration.instanceType, false when absent or not a string
func (item ConfigurationItem) InstanceType() (string, bool) {
	if item.Configuration == nil {
		return "", false
	}
	instanceType, ok := item.Configuration["instanceType"].(string)
	if !ok || instanceType == "" {
		return "", false
	}
	return instanceType, true
}
