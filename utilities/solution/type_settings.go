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

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		GCS struct {
			Buckets struct {
				AccessLogs struct {
					Name  string            `yaml:"name,omitempty" valid:"isNotZeroValue"`
					Names map[string]string `yaml:"names"`
				} `yaml:"accessLogs"`
			} `yaml:"buckets"`
		} `yaml:"gcs"`
	} `yaml:"hosting"`
	Lake struct {
		Region           string            `yaml:"region" valid:"isNotZeroValue"`
		AccountID        string            `yaml:"accountID,omitempty" valid:"isNotZeroValue"`
		AccountIDs       map[string]string `yaml:"accountIDs"`
		BucketNamePrefix string            `yaml:"bucketNamePrefix,omitempty"`
		BucketName       string            `yaml:"bucketName,omitempty"`
	} `yaml:"lake"`
}
