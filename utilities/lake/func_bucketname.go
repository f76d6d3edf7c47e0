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

package lake

import (
	"fmt"
)

// DefaultBucketNamePrefix prefix of the data lake bucket names
const DefaultBucketNamePrefix = "aws-security-data-lake"

// BucketName data lake bucket of a region and an account
func BucketName(prefix string, region string, accountID string) string {
	if prefix == "" {
		prefix = DefaultBucketNamePrefix
	}
	return fmt.Sprintf("%s-%s-%s", prefix, region, accountID)
}
