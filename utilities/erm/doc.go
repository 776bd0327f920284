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

/*
Package erm error management

Typed errors shared by the rule functions. Each error names the field or the operation that failed so that operators can diagnose an invocation from its log line only.

- MissingFieldError: a required value is absent.

- LookupError: an external lookup returned zero results where one was expected.

- ReportingError: the evaluation submission failed.

None of them is retried locally: they abort the invocation and are returned to the runtime.
*/
package erm
