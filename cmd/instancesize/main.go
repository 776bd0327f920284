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

// Command instancesize is the AWS Lambda function evaluating EC2 instance sizes for an AWS Config custom rule
package main

import (
	"context"

	"github.com/BrunoReboul/ramaws/services/instancesize"
	"github.com/aws/aws-lambda-go/lambda"
)

var global instancesize.Global
var ctx = context.Background()

func handler(ctxEvent context.Context, event instancesize.ConfigEvent) error {
	return instancesize.EntryPoint(ctxEvent, event, &global)
}

func init() {
	// a failure is logged and remembered, each event then returns an error
	_ = instancesize.Initialize(ctx, &global)
}

func main() {
	lambda.Start(handler)
}
