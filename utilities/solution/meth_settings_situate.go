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

import (
	"github.com/BrunoReboul/seclake/utilities/lake"
)

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: access logs bucket name, lake account ID, lake bucket name
func (settings *Settings) Situate(environmentName string) {
	if name, ok := settings.Hosting.GCS.Buckets.AccessLogs.Names[environmentName]; ok {
		settings.Hosting.GCS.Buckets.AccessLogs.Name = name
	}
	if accountID, ok := settings.Lake.AccountIDs[environmentName]; ok {
		settings.Lake.AccountID = accountID
	}
	settings.setLakeBucketName()
}

// Override replaces settings by the environment variables that are set
func (settings *Settings) Override(lookupEnv func(key string) (string, bool)) {
	if value, ok := lookupEnv(EnvAccessLogsBucket); ok && value != "" {
		settings.Hosting.GCS.Buckets.AccessLogs.Name = value
	}
	if value, ok := lookupEnv(EnvLakeRegion); ok && value != "" {
		settings.Lake.Region = value
	}
	if value, ok := lookupEnv(EnvLakeAccountID); ok && value != "" {
		settings.Lake.AccountID = value
	}
	settings.setLakeBucketName()
}

func (settings *Settings) setLakeBucketName() {
	if settings.Lake.Region == "" || settings.Lake.AccountID == "" {
		return
	}
	settings.Lake.BucketName = lake.BucketName(settings.Lake.BucketNamePrefix, settings.Lake.Region, settings.Lake.AccountID)
}
