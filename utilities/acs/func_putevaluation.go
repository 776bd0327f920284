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
	"fmt"

	"github.com/BrunoReboul/ramaws/utilities/erm"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// PutEvaluation submit one evaluation to AWS Config
// The ordering timestamp is the configuration item capture time, not the wall clock
func PutEvaluation(ctx context.Context, evaluationsAPI EvaluationsAPI, evaluation Evaluation, resultToken string) error {
	item := evaluation.ConfigurationItem
	orderingTimestamp, err := erm.Required("configurationItemCaptureTime", item.ConfigurationItemCaptureTime)
	if err != nil {
		return err
	}

	awsEvaluation := types.Evaluation{
		ComplianceResourceId:   aws.String(item.ResourceID),
		ComplianceResourceType: aws.String(item.ResourceType),
		ComplianceType:         evaluation.ComplianceType,
		OrderingTimestamp:      aws.Time(orderingTimestamp),
	}
	if evaluation.Annotation != "" {
		awsEvaluation.Annotation = aws.String(truncate(evaluation.Annotation, annotationMaxLength))
	}

	input := &configservice.PutEvaluationsInput{
		ResultToken: aws.String(resultToken),
		Evaluations: []types.Evaluation{awsEvaluation},
	}
	if evaluation.TestMode {
		input.TestMode = true
	}

	output, err := evaluationsAPI.PutEvaluations(ctx, input)
	if err != nil {
		return &erm.ReportingError{Operation: "PutEvaluations", Err: err}
	}
	if output != nil && len(output.FailedEvaluations) > 0 {
		return &erm.ReportingError{
			Operation: "PutEvaluations",
			Err:       fmt.Errorf("%d failed evaluations for %s %s", len(output.FailedEvaluations), item.ResourceType, item.ResourceID),
		}
	}
	return nil
}

func truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}
