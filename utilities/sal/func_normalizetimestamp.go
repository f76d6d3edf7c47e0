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

package sal

import (
	"strings"
	"time"
)

const timestampLayout = "02/Jan/2006:15:04:05"

// NormalizeTimestamp converts an access log time like 06/Feb/2019:00:00:38 +0000 into epoch milliseconds
// Enclosing brackets are tolerated and the UTC offset is ignored, the value is read as UTC.
// When the token cannot be parsed the current time is returned so that the event is still emitted.
func NormalizeTimestamp(token string, now func() time.Time) int64 {
	if now == nil {
		now = time.Now
	}
	value := strings.TrimSpace(token)
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")
	if i := strings.IndexAny(value, " +"); i >= 0 {
		value = value[:i]
	}
	t, err := time.ParseInLocation(timestampLayout, value, time.UTC)
	if err != nil {
		return now().UnixMilli()
	}
	return t.UnixMilli()
}
