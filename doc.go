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
Package ramaws Real-time Asset Monitor for AWS

## What

Audit AWS resources compliance against a set of rules when the resource configuration changes, as AWS Config custom rules running in AWS Lambda. Each rule reports exactly one verdict per configuration change: COMPLIANT, NON_COMPLIANT or NOT_APPLICABLE.

### Rules

1. instancesize: EC2 instances should not exceed a vCPU count and a memory size
   - E.g. cpu-limit 4 and ram-limit 16 flags any instance type larger than m5.xlarge

## How

- cmd/instancesize is the Lambda function main package
- services/instancesize orchestrates one evaluation per event
- utilities/acs talks to AWS Config: event decoding, configuration history, evaluation reporting
- utilities/aec resolves EC2 instance type specifications
- utilities/pol holds the rule parameters, the threshold evaluation and the rego annotations
*/
package ramaws
