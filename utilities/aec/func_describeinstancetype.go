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
	"fmt"

	"github.com/BrunoReboul/ramaws/utilities/erm"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// DescribeInstanceType get the default vCPU count and the memory size of one instance type
func DescribeInstanceType(ctx context.Context, instanceTypesAPI InstanceTypesAPI, instanceType string) (instanceSpec InstanceSpec, err error) {
	if instanceType == "" {
		return instanceSpec, &erm.MissingFieldError{Field: "instanceType"}
	}
	output, err := instanceTypesAPI.DescribeInstanceTypes(ctx, &ec2.DescribeInstanceTypesInput{
		InstanceTypes: []types.InstanceType{types.InstanceType(instanceType)},
	})
	if err != nil {
		return instanceSpec, fmt.Errorf("DescribeInstanceTypes %s %w", instanceType, err)
	}
	if output == nil || len(output.InstanceTypes) == 0 {
		return instanceSpec, &erm.LookupError{Operation: "DescribeInstanceTypes", Key: instanceType}
	}
	description := output.InstanceTypes[0]

	if description.VCpuInfo == nil || description.VCpuInfo.DefaultVCpus == nil {
		return instanceSpec, &erm.MissingFieldError{Field: "VCpuInfo.DefaultVCpus"}
	}
	if description.MemoryInfo == nil || description.MemoryInfo.SizeInMiB == nil {
		return instanceSpec, &erm.MissingFieldError{Field: "MemoryInfo.SizeInMiB"}
	}

	instanceSpec.InstanceType = instanceType
	instanceSpec.VCPUs = *description.VCpuInfo.DefaultVCpus
	instanceSpec.MemoryMiB = *description.MemoryInfo.SizeInMiB
	instanceSpec.MemoryGiB = MiBToGiB(instanceSpec.MemoryMiB)
	return instanceSpec, nil
}
