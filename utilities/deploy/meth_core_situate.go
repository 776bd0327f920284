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

package deploy

import (
	"fmt"
	"os"

	"github.com/BrunoReboul/ramaws/utilities/solution"
	"github.com/BrunoReboul/ramaws/utilities/validater"
)

// Situate resolves the core settings for the environment the function runs in, then validates them
// The environment name comes from the settings file, else from RAM_ENVIRONMENT
// The hosting region falls back to the AWS_REGION set by the Lambda runtime
func (core *Core) Situate() (err error) {
	if core.EnvironmentName == "" {
		core.EnvironmentName = os.Getenv(solution.EnvironmentVariableName)
	}
	if core.EnvironmentName == "" {
		return fmt.Errorf("missing environment name: set environmentName in %s or %s", solution.SettingsFileName, solution.EnvironmentVariableName)
	}
	core.SolutionSettings.Situate(core.EnvironmentName, os.Getenv(solution.RegionVariableName))
	if err = validater.ValidateStruct(core, "core"); err != nil {
		return fmt.Errorf("ValidateStruct %v", err)
	}
	return nil
}
