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
Package pol instance size policy

Rule parameters

The AWS Config rule parameters are a JSON object with two keys, each value being a number or a numeric string:

 {"cpu-limit": "4", "ram-limit": "16"}

cpu-limit is a count of default vCPUs, ram-limit is a memory size in GiB.

Verdict

An instance is NON_COMPLIANT when its vCPU count is strictly greater than cpu-limit OR its memory is strictly greater than ram-limit. Values equal to the limits are COMPLIANT.

Annotation

Non compliant verdicts carry a short explanation produced by the deny rules of the embedded instancesize.rego module.
*/
package pol
