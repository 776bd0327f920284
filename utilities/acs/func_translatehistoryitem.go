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
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// TranslateHistoryItem converts a configuration history item to the canonical notification shape
// arn to ARN, accountId to awsAccountId, configurationItemMD5Hash to configurationStateMd5Hash,
// version to configurationItemVersion, relationshipName to name, configuration string to structured value
func TranslateHistoryItem(historyItem types.ConfigurationItem) (item ConfigurationItem, err error) {
	item.ARN = aws.ToString(historyItem.Arn)
	item.AWSAccountID = aws.ToString(historyItem.AccountId)
	item.ConfigurationStateMD5Hash = aws.ToString(historyItem.ConfigurationItemMD5Hash)
	item.ConfigurationItemVersion = aws.ToString(historyItem.Version)

	item.AvailabilityZone = aws.ToString(historyItem.AvailabilityZone)
	item.AWSRegion = aws.ToString(historyItem.AwsRegion)
	item.ConfigurationItemCaptureTime = historyItem.ConfigurationItemCaptureTime
	item.ConfigurationItemStatus = historyItem.ConfigurationItemStatus
	item.ConfigurationStateID = json.Number(aws.ToString(historyItem.ConfigurationStateId))
	item.RelatedEvents = historyItem.RelatedEvents
	item.ResourceCreationTime = historyItem.ResourceCreationTime
	item.ResourceID = aws.ToString(historyItem.ResourceId)
	item.ResourceName = aws.ToString(historyItem.ResourceName)
	item.ResourceType = string(historyItem.ResourceType)
	item.Tags = historyItem.Tags

	if historyItem.SupplementaryConfiguration != nil {
		item.SupplementaryConfiguration = make(map[string]interface{}, len(historyItem.SupplementaryConfiguration))
		for key, value := range historyItem.SupplementaryConfiguration {
			item.SupplementaryConfiguration[key] = value
		}
	}

	if historyItem.Configuration != nil {
		err = json.Unmarshal([]byte(*historyItem.Configuration), &item.Configuration)
		if err != nil {
			return item, fmt.Errorf("json.Unmarshal configuration of %s %w", item.ResourceID, err)
		}
	}

	// nil stays nil: no relationships list is made up when the history has none
	if historyItem.Relationships != nil {
		item.Relationships = make([]Relationship, 0, len(historyItem.Relationships))
		for _, relationship := range historyItem.Relationships {
			item.Relationships = append(item.Relationships, Relationship{
				ResourceID:   aws.ToString(relationship.ResourceId),
				ResourceName: aws.ToString(relationship.ResourceName),
				ResourceType: string(relationship.ResourceType),
				Name:         aws.ToString(relationship.RelationshipName),
			})
		}
	}
	return item, nil
}
