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

// ConfigEvent payload AWS Config sends to a custom rule Lambda function
// Pointers distinguish absent fields from zero values
// https://docs.aws.amazon.com/config/latest/developerguide/evaluate-config_develop-rules_example-events.html
type ConfigEvent struct {
	InvokingEvent    *string `json:"invokingEvent"`
	RuleParameters   *string `json:"ruleParameters"`
	ResultToken      *string `json:"resultToken"`
	EventLeftScope   *bool   `json:"eventLeftScope"`
	ConfigRuleName   *string `json:"configRuleName"`
	ConfigRuleArn    *string `json:"configRuleArn"`
	ConfigRuleID     *string `json:"configRuleId"`
	AccountID        *string `json:"accountId"`
	ExecutionRoleArn *string `json:"executionRoleArn"`
	Version          *string `json:"version"`
}
