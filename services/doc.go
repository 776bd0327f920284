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
Package services structure

All service Lambda function packages share a consistent structure

## Two functions and one type

### `Initialize` function

- Goal
  - Reduce the invocation latency by doing the expensive work once per execution environment
- Implementation
  - Is executed once per Lambda execution environment, on cold start
  - Cache objects expensive to create, like AWS SDK clients and prepared rego queries
  - Retrieve settings once, from the settings file deployed next to the binary and from environment variables
  - Cached objects and retrieved settings are exposed in one global variable named `global`
  - A failure is logged as `init_failed` and remembered

### `Global` type

- A `struct` to define a global variable carrying cached objects and retrieved settings by the `Initialize` function and used by the `EntryPoint` function
- Read only once `Initialize` returned

### `EntryPoint` function

- Goal
  - Execute operations to be performed each time the Lambda function is invoked
- Implementation
  - Is executed on every event triggering the Lambda function
  - Uses cached objects and retrieved settings prepared by the `Initialize` function and carried by a global variable of type `Global`
  - Performs the task a given service is targeted to do that is described before the `package` key word
  - Returns an error to the Lambda runtime on any failure, the platform owns re-delivery

*/
package services
