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
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitTranslateHistoryItem(t *testing.T) {
	captureTime := time.Date(2024, 3, 5, 10, 11, 12, 0, time.UTC)
	historyItem := types.ConfigurationItem{
		AccountId:                    aws.String("123456789012"),
		Arn:                          aws.String("arn:aws:ec2:eu-west-1:123456789012:instance/i-abc"),
		AvailabilityZone:             aws.String("eu-west-1a"),
		AwsRegion:                    aws.String("eu-west-1"),
		Configuration:                aws.String(`{"instanceType":"m5.large","state":{"name":"running"}}`),
		ConfigurationItemCaptureTime: aws.Time(captureTime),
		ConfigurationItemMD5Hash:     aws.String("d41d8cd98f00b204e9800998ecf8427e"),
		ConfigurationItemStatus:      types.ConfigurationItemStatusOk,
		ConfigurationStateId:         aws.String("1709633472000"),
		ResourceId:                   aws.String("i-abc"),
		ResourceType:                 types.ResourceType("AWS::EC2::Instance"),
		Tags:                         map[string]string{"owner": "team-a"},
		Version:                      aws.String("1.3"),
		SupplementaryConfiguration:   map[string]string{"note": "x"},
		Relationships: []types.Relationship{
			{
				RelationshipName: aws.String("Is contained in Vpc"),
				ResourceId:       aws.String("vpc-1"),
				ResourceType:     types.ResourceType("AWS::EC2::VPC"),
			},
			{
				RelationshipName: aws.String("Is associated with SecurityGroup"),
				ResourceId:       aws.String("sg-2"),
				ResourceType:     types.ResourceType("AWS::EC2::SecurityGroup"),
			},
			{
				RelationshipName: aws.String("Is attached to Volume"),
				ResourceId:       aws.String("vol-3"),
				ResourceType:     types.ResourceType("AWS::EC2::Volume"),
			},
		},
	}

	item, err := TranslateHistoryItem(historyItem)
	require.NoError(t, err)

	assert.Equal(t, "arn:aws:ec2:eu-west-1:123456789012:instance/i-abc", item.ARN)
	assert.Equal(t, "123456789012", item.AWSAccountID)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", item.ConfigurationStateMD5Hash)
	assert.Equal(t, "1.3", item.ConfigurationItemVersion)
	assert.Equal(t, "i-abc", item.ResourceID)
	assert.Equal(t, "AWS::EC2::Instance", item.ResourceType)
	assert.Equal(t, types.ConfigurationItemStatusOk, item.ConfigurationItemStatus)
	assert.Equal(t, "1709633472000", string(item.ConfigurationStateID))
	assert.Equal(t, "eu-west-1", item.AWSRegion)
	assert.Equal(t, "eu-west-1a", item.AvailabilityZone)
	assert.Equal(t, map[string]string{"owner": "team-a"}, item.Tags)
	assert.Equal(t, "x", item.SupplementaryConfiguration["note"])
	require.NotNil(t, item.ConfigurationItemCaptureTime)
	assert.True(t, captureTime.Equal(*item.ConfigurationItemCaptureTime))

	instanceType, ok := item.InstanceType()
	assert.True(t, ok)
	assert.Equal(t, "m5.large", instanceType)
	state, ok := item.Configuration["state"].(map[string]interface{})
	require.True(t, ok, "nested configuration should be decoded to a structured value")
	assert.Equal(t, "running", state["name"])

	require.Len(t, item.Relationships, 3)
	assert.Equal(t, Relationship{ResourceID: "vpc-1", ResourceType: "AWS::EC2::VPC", Name: "Is contained in Vpc"}, item.Relationships[0])
	assert.Equal(t, "sg-2", item.Relationships[1].ResourceID)
	assert.Equal(t, "Is associated with SecurityGroup", item.Relationships[1].Name)
	assert.Equal(t, "vol-3", item.Relationships[2].ResourceID)
	assert.Equal(t, "Is attached to Volume", item.Relationships[2].Name)
}

func TestUnitTranslateHistoryItemRelationships(t *testing.T) {
	var testCases = []struct {
		name          string
		relationships []types.Relationship
		wantNil       bool
		wantLen       int
	}{
		{
			name:          "absentStaysAbsent",
			relationships: nil,
			wantNil:       true,
		},
		{
			name:          "emptyStaysEmpty",
			relationships: []types.Relationship{},
			wantLen:       0,
		},
		{
			name: "one",
			relationships: []types.Relationship{
				{RelationshipName: aws.String("Is contained in Subnet"), ResourceId: aws.String("subnet-1")},
			},
			wantLen: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			item, err := TranslateHistoryItem(types.ConfigurationItem{
				ResourceId:    aws.String("i-abc"),
				Relationships: tc.relationships,
			})
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, item.Relationships)
				return
			}
			require.NotNil(t, item.Relationships)
			assert.Len(t, item.Relationships, tc.wantLen)
		})
	}
}

func TestUnitTranslateHistoryItemInvalidConfiguration(t *testing.T) {
	_, err := TranslateHistoryItem(types.ConfigurationItem{
		ResourceId:    aws.String("i-abc"),
		Configuration: aws.String(`{"instanceType":`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestUnitTranslateHistoryItemNoConfiguration(t *testing.T) {
	item, err := TranslateHistoryItem(types.ConfigurationItem{ResourceId: aws.String("i-abc")})
	require.NoError(t, err)
	_, ok := item.InstanceType()
	assert.False(t, ok)
}
