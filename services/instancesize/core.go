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
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/ramaws/utilities/acs"
	"github.com/BrunoReboul/ramaws/utilities/aec"
	"github.com/BrunoReboul/ramaws/utilities/erm"
	"github.com/BrunoReboul/ramaws/utilities/ffo"
	"github.com/BrunoReboul/ramaws/utilities/logging"
	"github.com/BrunoReboul/ramaws/utilities/pol"
	"github.com/BrunoReboul/ramaws/utilities/solution"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/BrunoReboul/ramaws/services/instancesize"

// Global structure for global variables to optimize the Lambda function performances
// Read only once Initialize returned
type Global struct {
	clients          Clients
	configRuleName   string
	environment      string
	explainer        *pol.Explainer
	flusher          spanFlusher
	initFailed       bool
	initID           string
	instanceName     string
	microserviceName string
	testMode         bool
	tracer           trace.Tracer
}

// NewGlobal builds a ready to use Global around already built clients
func NewGlobal(ctx context.Context, clients Clients) (*Global, error) {
	global := &Global{
		initID:           fmt.Sprintf("%v", uuid.New()),
		microserviceName: serviceName,
	}
	if err := global.attach(ctx, clients); err != nil {
		return nil, err
	}
	return global, nil
}

func (global *Global) attach(ctx context.Context, clients Clients) (err error) {
	if clients.History == nil || clients.Evaluations == nil || clients.Catalog == nil {
		return fmt.Errorf("missing client: History, Evaluations and Catalog are all required")
	}
	global.clients = clients
	global.explainer, err = pol.NewExplainer(ctx)
	if err != nil {
		return fmt.Errorf("pol.NewExplainer %w", err)
	}
	tracerProvider := clients.TracerProvider
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}
	global.tracer = tracerProvider.Tracer(tracerName)
	global.flusher, _ = tracerProvider.(spanFlusher)
	return nil
}

// spanFlusher is implemented by the SDK tracer provider
type spanFlusher interface {
	ForceFlush(ctx context.Context) error
}

// flushSpans exports the spans of the invocation before Lambda freezes the execution environment
func (global *Global) flushSpans(ctx context.Context, logEntry logging.Entry) {
	if global.flusher == nil {
		return
	}
	if err := global.flusher.ForceFlush(ctx); err != nil {
		logEntry.Severity = "WARNING"
		logEntry.Message = "trace_flush_failed"
		logEntry.Description = err.Error()
		log.Println(logEntry)
	}
}

// Initialize is to be executed once per cold start, before the first event
// A failure is remembered: EntryPoint then fails every event
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.initFailed = true
	global.initID = fmt.Sprintf("%v", uuid.New())
	global.microserviceName = serviceName

	instanceDeployment := NewInstanceDeployment()
	err = ffo.ReadUnmarshalYAML(solution.PathToFunctionCode()+solution.SettingsFileName, instanceDeployment)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err))
		return err
	}
	if instanceDeployment.Core == nil {
		err = &erm.MissingFieldError{Field: "core"}
		global.logInitFailed(fmt.Sprintf("%s %v", solution.SettingsFileName, err))
		return err
	}
	if err = instanceDeployment.Core.Situate(); err != nil {
		global.logInitFailed(fmt.Sprintf("Situate %v", err))
		return err
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName
	global.configRuleName = instanceDeployment.Settings.Instance.ConfigRuleName
	global.testMode = instanceDeployment.Settings.Service.TestMode

	description := fmt.Sprintf("hosting region %s catalog region %s test mode %v tracing %v",
		instanceDeployment.Core.SolutionSettings.Hosting.Region,
		instanceDeployment.Core.SolutionSettings.Catalog.Region,
		global.testMode,
		instanceDeployment.Settings.Service.Tracing.Enabled)
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		Description:      description,
		InitID:           global.initID,
	})

	hostingConfig, err := loadConfig(ctx, instanceDeployment.Core.SolutionSettings.Hosting.Region)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("config.LoadDefaultConfig hosting %v", err))
		return err
	}
	catalogConfig, err := loadConfig(ctx, instanceDeployment.Core.SolutionSettings.Catalog.Region)
	if err != nil {
		global.logInitFailed(fmt.Sprintf("config.LoadDefaultConfig catalog %v", err))
		return err
	}
	configserviceClient := configservice.NewFromConfig(hostingConfig)
	clients := Clients{
		History:     configserviceClient,
		Evaluations: configserviceClient,
		Catalog:     ec2.NewFromConfig(catalogConfig),
	}
	if instanceDeployment.Settings.Service.Tracing.Enabled {
		tracerProvider, err := newTracerProvider(ctx, instanceDeployment.Settings.Service.Tracing, instanceDeployment.Core)
		if err != nil {
			global.logInitFailed(fmt.Sprintf("newTracerProvider %v", err))
			return err
		}
		otel.SetTracerProvider(tracerProvider)
		clients.TracerProvider = tracerProvider
	}
	err = global.attach(ctx, clients)
	if err != nil {
		global.logInitFailed(err.Error())
		return err
	}
	global.initFailed = false
	return nil
}

// loadConfig AWS configuration for one region, one attempt per API call
func loadConfig(ctx context.Context, region string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithRetryMaxAttempts(1))
}

func (global *Global) logInitFailed(description string) {
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "init_failed",
		Description:      description,
		InitID:           global.initID,
	})
}

// EntryPoint is the function to be executed for each AWS Config event
// It reports exactly one evaluation, or returns an error and reports nothing
func EntryPoint(ctxEvent context.Context, event ConfigEvent, global *Global) error {
	start := time.Now()
	logEntry := logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		InitID:           global.initID,
		ConfigRuleName:   global.configRuleName,
	}
	if lc, ok := lambdacontext.FromContext(ctxEvent); ok {
		logEntry.RequestID = lc.AwsRequestID
	}
	if event.ConfigRuleName != nil {
		logEntry.ConfigRuleName = *event.ConfigRuleName
	}

	if global.initFailed || global.explainer == nil {
		err := fmt.Errorf("initialization failed for init_id %s", global.initID)
		logFailure(logEntry, err)
		return err
	}

	logEntry.Message = "start"
	logEntry.Now = &start
	log.Println(logEntry)
	logEntry.Now = nil
	defer global.flushSpans(ctxEvent, logEntry)

	evaluation, resultToken, err := global.evaluate(ctxEvent, event, &logEntry)
	if err != nil {
		logFailure(logEntry, err)
		return err
	}

	ctxSpan, span := global.tracer.Start(ctxEvent, "acs.PutEvaluation",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("compliance_type", string(evaluation.ComplianceType))))
	err = acs.PutEvaluation(ctxSpan, global.clients.Evaluations, evaluation, resultToken)
	endSpan(span, err)
	if err != nil {
		logFailure(logEntry, err)
		return err
	}

	now := time.Now()
	logEntry.Severity = "NOTICE"
	logEntry.Message = "finish"
	logEntry.Description = evaluation.Annotation
	logEntry.Now = &now
	logEntry.LatencySeconds = now.Sub(start).Seconds()
	if evaluation.ConfigurationItem.ConfigurationItemCaptureTime != nil {
		logEntry.LatencyE2ESeconds = now.Sub(*evaluation.ConfigurationItem.ConfigurationItemCaptureTime).Seconds()
	}
	log.Println(logEntry)
	return nil
}

// evaluate walks the event from its decoding to the verdict, without reporting it
func (global *Global) evaluate(ctx context.Context, event ConfigEvent, logEntry *logging.Entry) (evaluation acs.Evaluation, resultToken string, err error) {
	invokingEvent, err := acs.ParseInvokingEvent(event.InvokingEvent)
	if err != nil {
		return evaluation, "", err
	}
	eventLeftScope, err := erm.Required("eventLeftScope", event.EventLeftScope)
	if err != nil {
		return evaluation, "", err
	}
	resultToken, err = erm.Required("resultToken", event.ResultToken)
	if err != nil {
		return evaluation, "", err
	}

	ctxSpan, span := global.tracer.Start(ctx, "acs.GetConfigurationItem", trace.WithSpanKind(trace.SpanKindClient))
	item, err := acs.GetConfigurationItem(ctxSpan, global.clients.History, invokingEvent)
	endSpan(span, err)
	if err != nil {
		return evaluation, "", err
	}
	logEntry.ResourceType = item.ResourceType
	logEntry.ResourceID = item.ResourceID
	logEntry.CaptureTimestamp = item.ConfigurationItemCaptureTime

	evaluation = acs.Evaluation{
		ComplianceType:    types.ComplianceTypeNotApplicable,
		ConfigurationItem: item,
		TestMode:          global.testMode,
	}
	applicable, err := acs.IsApplicable(&item, eventLeftScope)
	if err != nil {
		return evaluation, "", err
	}
	if !applicable {
		logEntry.ComplianceType = string(evaluation.ComplianceType)
		logEntry.Message = "not_applicable"
		logEntry.Description = fmt.Sprintf("status %s event left scope %v", item.ConfigurationItemStatus, eventLeftScope)
		log.Println(*logEntry)
		logEntry.Description = ""
		return evaluation, resultToken, nil
	}

	limits, err := pol.ParseRuleParameters(event.RuleParameters)
	if err != nil {
		return evaluation, "", err
	}
	instanceType, ok := item.InstanceType()
	if !ok {
		return evaluation, "", &erm.MissingFieldError{Field: "instanceType"}
	}

	ctxSpan, span = global.tracer.Start(ctx, "aec.DescribeInstanceType",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("instance_type", instanceType)))
	instanceSpec, err := aec.DescribeInstanceType(ctxSpan, global.clients.Catalog, instanceType)
	endSpan(span, err)
	if err != nil {
		return evaluation, "", err
	}

	evaluation.ComplianceType = pol.Evaluate(instanceSpec, limits)
	if evaluation.ComplianceType == types.ComplianceTypeNonCompliant {
		evaluation.Annotation, err = global.explainer.Explain(ctx, instanceSpec, limits)
		if err != nil {
			// the verdict stands without its annotation
			log.Println(logging.Entry{
				MicroserviceName: logEntry.MicroserviceName,
				InstanceName:     logEntry.InstanceName,
				Environment:      logEntry.Environment,
				Severity:         "WARNING",
				Message:          "annotation_failed",
				Description:      err.Error(),
				RequestID:        logEntry.RequestID,
			})
			evaluation.Annotation = ""
		}
	}

	logEntry.ComplianceType = string(evaluation.ComplianceType)
	logEntry.Message = "evaluated"
	logEntry.Description = fmt.Sprintf("%s cpu-limit %v ram-limit %v GiB", instanceSpec, limits.CPULimit, limits.RAMLimit)
	log.Println(*logEntry)
	logEntry.Description = ""
	return evaluation, resultToken, nil
}

// logFailure CRITICAL entry, redo_on_transient when an AWS call failed, noretry when the event itself is faulty
func logFailure(logEntry logging.Entry, err error) {
	logEntry.Severity = "CRITICAL"
	logEntry.Message = "noretry"
	if isTransient(err) {
		logEntry.Message = "redo_on_transient"
	}
	logEntry.Description = err.Error()
	log.Println(logEntry)
}

func isTransient(err error) bool {
	var missingFieldError *erm.MissingFieldError
	if errors.As(err, &missingFieldError) {
		return false
	}
	var lookupError *erm.LookupError
	if errors.As(err, &lookupError) {
		return false
	}
	var reportingError *erm.ReportingError
	if errors.As(err, &reportingError) {
		return true
	}
	// AWS SDK operation errors expose the failing service
	var operationError interface{ Service() string }
	return errors.As(err, &operationError)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
