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
	"github.com/BrunoReboul/ramaws/utilities/acs"
	"github.com/BrunoReboul/ramaws/utilities/aec"
	"go.opentelemetry.io/otel/trace"
)

// Clients AWS APIs used by the function
// The configservice client serves both History and Evaluations
// TracerProvider is optional, the global provider is used when nil
type Clients struct {
	History        acs.HistoryAPI
	Evaluations    acs.EvaluationsAPI
	Catalog        aec.InstanceTypesAPI
	TracerProvider trace.TracerProvider
}
