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

package acs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/configservice"
)

type fakeHistoryAPI struct {
	output *configservice.GetResourceConfigHistoryOutput
	err    error
	inputs []*configservice.GetResourceConfigHistoryInput
}

func (f *fakeHistoryAPI) GetResourceConfigHistory(ctx context.Context, params *configservice.GetResourceConfigHistoryInput, optFns ...func(*configservice.Options)) (*configservice.GetResourceConfigHistoryOutput, error) {
	f.inputs = append(f.inputs, params)
	return f.output, f.err
}

type fakeEvaluationsAPI struct {
	output *configservice.PutEvaluationsOutput
	err    error
	inputs []*configservice.PutEvaluationsInput
}

func (f *fakeEvaluationsAPI) PutEvaluations(ctx context.Context, params *configservice.PutEvaluationsInput, optFns ...func(*configservice.Options)) (*configservice.PutEvaluationsOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.output == nil && f.err == nil {
		return &configservice.PutEvaluationsOutput{}, nil
	}
	return f.output, f.err
}
