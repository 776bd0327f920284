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
Package acs AWS Config Service helpers

- Decode the invoking event AWS Config sends to a custom rule.

- Get one canonical configuration item, from the notification itself or, when the notification is oversized, from the resource configuration history.

- Decide whether a configuration item can be evaluated.

- Put the evaluation result back to AWS Config.
*/
package acs
