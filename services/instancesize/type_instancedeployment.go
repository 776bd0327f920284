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
	"github.com/BrunoReboul/ramaws/utilities/deploy"
)

const serviceName = "instancesize"

// InstanceDeployment settings structure, as read from the settings file
type InstanceDeployment struct {
	Core     *deploy.Core
	Settings Settings
}

// Settings flat settings structure: service - instance
type Settings struct {
	Service  ServiceSettings
	Instance InstanceSettings
}

// ServiceSettings defines service settings common to all service instances
type ServiceSettings struct {
	TestMode bool `yaml:"testMode"`
	Tracing  TracingSettings
}

// TracingSettings OpenTelemetry export of the spans around AWS calls
type TracingSettings struct {
	Enabled      bool
	OTLPEndpoint string  `yaml:"otlpEndpoint"`
	Insecure     bool    `yaml:"insecure"`
	SampleRate   float64 `yaml:"sampleRate"`
}

// InstanceSettings instance specific settings
type InstanceSettings struct {
	ConfigRuleName string `yaml:"configRuleName"`
}

// NewInstanceDeployment create deployment structure
func NewInstanceDeployment() *InstanceDeployment {
	return &InstanceDeployment{}
}
