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

package aec

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// InstanceSpec compute and memory capacity of an EC2 instance type
type InstanceSpec struct {
	InstanceType string  `json:"instanceType"`
	VCPUs        int32   `json:"vCpus"`
	MemoryMiB    int64   `json:"memoryMiB"`
	MemoryGiB    float64 `json:"memoryGiB"`
}

// InstanceTypesAPI the part of the EC2 client used to describe instance types
type InstanceTypesAPI interface {
	DescribeInstanceTypes(ctx context.Context, params *ec2.DescribeInstanceTypesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceTypesOutput, error)
}
