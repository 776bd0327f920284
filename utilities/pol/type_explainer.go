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

package pol

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BrunoReboul/ramaws/utilities/aec"
	"github.com/open-policy-agent/opa/rego"
)

//go:embed instancesize.rego
var instanceSizeModule string

const denyQuery = "data.ramaws.instancesize.deny"

// Explainer evaluates the deny rules of the instance size rego module
// Prepare it once per cold start, it is safe to reuse across invocations
type Explainer struct {
	query rego.PreparedEvalQuery
}

// NewExplainer compiles the embedded rego module
func NewExplainer(ctx context.Context) (*Explainer, error) {
	query, err := rego.New(
		rego.Query(denyQuery),
		rego.Module("instancesize.rego", instanceSizeModule),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("rego PrepareForEval %w", err)
	}
	return &Explainer{query: query}, nil
}

// Explain returns the deny messages, sorted and joined by "; ", empty when nothing is denied
func (explainer *Explainer) Explain(ctx context.Context, instanceSpec aec.InstanceSpec, limits Limits) (string, error) {
	input := map[string]interface{}{
		"instance": instanceSpec,
		"limits":   limits,
	}
	resultSet, err := explainer.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("rego.Eval %s %w", denyQuery, err)
	}
	if len(resultSet) == 0 || len(resultSet[0].Expressions) == 0 {
		return "", nil
	}
	values, ok := resultSet[0].Expressions[0].Value.([]interface{})
	if !ok {
		return "", fmt.Errorf("rego.Eval %s unexpected value type %T", denyQuery, resultSet[0].Expressions[0].Value)
	}
	var messages []string
	for _, value := range values {
		if msg, ok := value.(string); ok {
			messages = append(messages, msg)
		}
	}
	sort.Strings(messages)
	return strings.Join(messages, "; "), nil
}
