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
	"strings"
	"time"

	"github.com/BrunoReboul/seclake/utilities/ocsf"
)

// AssembleBatches cuts events in batches of at most capacity events, keeping order
// A capacity lower than 1 falls back to DefaultCapacity.
func AssembleBatches(events []ocsf.APIActivity, capacity int, logType string, requestID string, now time.Time) []Batch {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	batches := make([]Batch, 0, (len(events)+capacity-1)/capacity)
	for offset := 0; offset < len(events); offset += capacity {
		end := offset + capacity
		if end > len(events) {
			end = len(events)
		}
		batches = append(batches, Batch{
			Key:    MakeKey(logType, requestID, offset, now),
			Offset: offset,
			Events: events[offset:end:end],
		})
	}
	return batches
}

// MakeKey object name of the batch starting at offset
func MakeKey(logType string, requestID string, offset int, now time.Time) string {
	return fmt.Sprintf("ext/%s/%s/%s-%d.json",
		strings.ReplaceAll(logType, " ", "_"),
		now.UTC().Format("2006/01/02"),
		requestID,
		offset)
}
