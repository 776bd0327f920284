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

package instancesize

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/require"
)

var captureTime = time.Date(2026, 10, 1, 10, 11, 12, 43000000, time.UTC)

type fakeConfigService struct {
	historyOutput *configservice.GetResourceConfigHistoryOutput
	historyErr    error
	historyInputs []*configservice.GetResourceConfigHistoryInput
	putOutput     *configservice.PutEvaluationsOutput
	putErr        error
	putInputs     []*configservice.PutEvaluationsInput
}

func (f *fakeConfigService) GetResourceConfigHistory(ctx context.Context, params *configservice.GetResourceConfigHistoryInput, optFns ...func(*configservice.Options)) (*configservice.GetResourceConfigHistoryOutput, error) {
	f.historyInputs = append(f.historyInputs, params)
	if f.historyOutput == nil {
		return &configservice.GetResourceConfigHistoryOutput{}, f.historyErr
	}
	return f.historyOutput, f.historyErr
}

func (f *fakeConfigService) PutEvaluations(ctx context.Context, params *configservice.PutEvaluationsInput, optFns ...func(*configservice.Options)) (*configservice.PutEvaluationsOutput, error) {
	f.putInputs = append(f.putInputs, params)
	if f.putOutput == nil {
		return &configservice.PutEvaluationsOutput{}, f.putErr
	}
	return f.putOutput, f.putErr
}

type fakeCatalog struct {
	instanceTypes []ec2types.InstanceTypeInfo
	err           error
	inputs        []*ec2.DescribeInstanceTypesInput
}

func (f *fakeCatalog) DescribeInstanceTypes(ctx context.Context, params *ec2.DescribeInstanceTypesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceTypesOutput, error) {
	f.inputs = append(f.inputs, params)
	return &ec2.DescribeInstanceTypesOutput{InstanceTypes: f.instanceTypes}, f.err
}

func newFakeCatalog(instanceType string, vCPUs int32, sizeInMiB int64) *fakeCatalog {
	return &fakeCatalog{
		instanceTypes: []ec2types.InstanceTypeInfo{
			{
				InstanceType: ec2types.InstanceType(instanceType),
				VCpuInfo:     &ec2types.VCpuInfo{DefaultVCpus: aws.Int32(vCPUs)},
				MemoryInfo:   &ec2types.MemoryInfo{SizeInMiB: aws.Int64(sizeInMiB)},
			},
		},
	}
}

func newTestGlobal(t *testing.T, configService *fakeConfigService, catalog *fakeCatalog) *Global {
	t.Helper()
	global, err := NewGlobal(context.Background(), Clients{
		History:     configService,
		Evaluations: configService,
		Catalog:     catalog,
	})
	require.NoError(t, err)
	return global
}

// inlineInvokingEvent configuration item change notification for one EC2 instance
func inlineInvokingEvent(status string, instanceType string) string {
	configuration := "{}"
	if instanceType != "" {
		configuration = fmt.Sprintf(`{"instanceType": %q, "state": {"name": "running"}}`, instanceType)
	}
	return fmt.Sprintf(`{
  "configurationItem": {
    "relationships": [{"resourceId": "vpc-1", "resourceType": "AWS::EC2::VPC", "name": "Is contained in Vpc"}],
    "configuration": %s,
    "configurationItemCaptureTime": %q,
    "configurationItemStatus": %q,
    "awsAccountId": "123456789012",
    "resourceType": "AWS::EC2::Instance",
    "resourceId": "i-0123456789abcdef0",
    "ARN": "arn:aws:ec2:eu-west-3:123456789012:instance/i-0123456789abcdef0",
    "awsRegion": "eu-west-3"
  },
  "notificationCreationTime": "2026-10-01T10:12:00.000Z",
  "messageType": "ConfigurationItemChangeNotification",
  "recordVersion": "1.3"
}`, configuration, captureTime.Format(time.RFC3339Nano), status)
}

const oversizedInvokingEvent = `{
  "configurationItemSummary": {
    "changeType": "UPDATE",
    "configurationItemCaptureTime": "2026-10-01T10:11:12.043Z",
    "configurationItemStatus": "OK",
    "resourceType": "AWS::EC2::Instance",
    "resourceId": "i-0123456789abcdef0",
    "awsRegion": "eu-west-3"
  },
  "messageType": "OversizedConfigurationItemChangeNotification",
  "notificationCreationTime": "2026-10-01T10:12:00.000Z",
  "recordVersion": "1.0"
}`

func ruleParameters(cpuLimit string, ramLimit string) *string {
	var parts []string
	if cpuLimit != "" {
		parts = append(parts, fmt.Sprintf(`"cpu-limit": %s`, cpuLimit))
	}
	if ramLimit != "" {
		parts = append(parts, fmt.Sprintf(`"ram-limit": %s`, ramLimit))
	}
	return aws.String("{" + strings.Join(parts, ", ") + "}")
}

func configEvent(invokingEvent string, parameters *string, eventLeftScope bool) ConfigEvent {
	return ConfigEvent{
		InvokingEvent:  aws.String(invokingEvent),
		RuleParameters: parameters,
		ResultToken:    aws.String("result-token"),
		EventLeftScope: aws.Bool(eventLeftScope),
		ConfigRuleName: aws.String("ec2-instance-size"),
		AccountID:      aws.String("123456789012"),
		Version:        aws.String("1.0"),
	}
}
