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
	"context"
	"fmt"

	"github.com/BrunoReboul/ramaws/utilities/deploy"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// newTracerProvider exports spans over OTLP gRPC, e.g. to the collector extension of the ADOT Lambda layer on localhost:4317
func newTracerProvider(ctx context.Context, tracing TracingSettings, core *deploy.Core) (*sdktrace.TracerProvider, error) {
	var opts []otlptracegrpc.Option
	if tracing.OTLPEndpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(tracing.OTLPEndpoint))
	}
	if tracing.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlptracegrpc.New %w", err)
	}
	res := resource.NewWithAttributes("",
		attribute.String("service.name", core.ServiceName),
		attribute.String("service.instance.id", core.InstanceName),
		attribute.String("deployment.environment", core.EnvironmentName),
	)
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sampler(tracing.SampleRate)),
	), nil
}

// sampler samples everything when the rate is not set
func sampler(sampleRate float64) sdktrace.Sampler {
	if sampleRate <= 0 || sampleRate >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(sampleRate)
}
