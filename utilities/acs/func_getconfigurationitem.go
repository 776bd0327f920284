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
	"context"
	"fmt"

	"github.com/BrunoReboul/ramaws/utilities/erm"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// GetConfigurationItem returns the canonical configuration item of an invoking event
// When the notification is oversized, the item captured no later than the summary capture time is read from the resource configuration history
func GetConfigurationItem(ctx context.Context, historyAPI HistoryAPI, invokingEvent InvokingEvent) (ConfigurationItem, error) {
	messageType, err := erm.Required("messageType", invokingEvent.MessageType)
	if err != nil {
		return ConfigurationItem{}, err
	}
	if messageType != MessageTypeOversized {
		return erm.Required("configurationItem", invokingEvent.ConfigurationItem)
	}

	summary, err := erm.Required("configurationItemSummary", invokingEvent.ConfigurationItemSummary)
	if err != nil {
		return ConfigurationItem{}, err
	}
	captureTime, err := erm.Required("configurationItemSummary.configurationItemCaptureTime", summary.ConfigurationItemCaptureTime)
	if err != nil {
		return ConfigurationItem{}, err
	}
	resourceType, err := erm.Required("configurationItemSummary.resourceType", summary.ResourceType)
	if err != nil {
		return ConfigurationItem{}, err
	}
	resourceID, err := erm.Required("configurationItemSummary.resourceId", summary.ResourceID)
	if err != nil {
		return ConfigurationItem{}, err
	}

	output, err := historyAPI.GetResourceConfigHistory(ctx, &configservice.GetResourceConfigHistoryInput{
		ResourceType: types.ResourceType(resourceType),
		ResourceId:   aws.String(resourceID),
		LaterTime:    aws.Time(captureTime),
		Limit:        1,
	})
	if err != nil {
		return ConfigurationItem{}, fmt.Errorf("GetResourceConfigHistory %s %s %w", resourceType, resourceID, err)
	}
	if output == nil || len(output.ConfigurationItems) == 0 {
		return ConfigurationItem{}, &erm.LookupError{
			Operation: "GetResourceConfigHistory",
			Key:       fmt.Sprintf("%s %s", resourceType, resourceID),
		}
	}
	return TranslateHistoryItem(output.ConfigurationItems[0])
}
