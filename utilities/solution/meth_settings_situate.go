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

package solution

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: hosting region, catalog region
// A region found in the per environment map wins over the single value.
// The hosting region falls back to fallbackRegion, the catalog region to DefaultCatalogRegion
func (settings *Settings) Situate(environmentName string, fallbackRegion string) {
	if region, ok := settings.Hosting.Regions[environmentName]; ok && region != "" {
		settings.Hosting.Region = region
	}
	if settings.Hosting.Region == "" {
		settings.Hosting.Region = fallbackRegion
	}
	if region, ok := settings.Catalog.Regions[environmentName]; ok && region != "" {
		settings.Catalog.Region = region
	}
	if settings.Catalog.Region == "" {
		settings.Catalog.Region = DefaultCatalogRegion
	}
}
