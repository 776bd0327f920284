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

/*
Package instancesize evaluates the size of EC2 instances against the vCPU and memory limits of an AWS Config custom rule.

Triggered by

AWS Config, on each configuration change of an AWS::EC2::Instance in the rule scope.

Instances

- one per AWS Config rule, each with its own cpu-limit and ram-limit rule parameters.

Output

Exactly one evaluation per event reported with config:PutEvaluations:

- NOT_APPLICABLE when the instance is deleted, not recorded or left the rule scope.

- NON_COMPLIANT when the instance type has more vCPUs than cpu-limit or more GiB of memory than ram-limit, annotated with the exceeded limits.

- COMPLIANT otherwise.

Cardinality

- one-one: one event, one evaluation.

Automatic retrying

Not implemented: the SDK clients do a single attempt and the Lambda runtime owns re-delivery.

Implementation example

	package main

	import (
		"context"

		"github.com/BrunoReboul/ramaws/services/instancesize"
		"github.com/aws/aws-lambda-go/lambda"
	)

	var global instancesize.Global

	func handler(ctx context.Context, event instancesize.ConfigEvent) error {
		return instancesize.EntryPoint(ctx, event, &global)
	}

	func main() {
		_ = instancesize.Initialize(context.Background(), &global)
		lambda.Start(handler)
	}
*/
package instancesize
