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

package solution

const (
	// SettingsFileName settings file deployed next to the function binary
	SettingsFileName = "settings.yaml"
	// DefaultCatalogRegion region queried for EC2 instance type specifications
	DefaultCatalogRegion = "us-east-1"
	// EnvironmentVariableName holds the environment name when the settings file does not set it
	EnvironmentVariableName = "RAM_ENVIRONMENT"
	// TaskRootVariableName is set by the Lambda runtime to the function code directory
	TaskRootVariableName = "LAMBDA_TASK_ROOT"
	// RegionVariableName is set by the Lambda runtime to the region the function runs in
	RegionVariableName = "AWS_REGION"
)
