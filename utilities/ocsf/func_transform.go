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

package ocsf

import (
	"github.com/BrunoReboul/seclake/utilities/sal"
)

// TransformStats counts what happened to the lines of one log object
type TransformStats struct {
	Lines      int
	Parsed     int
	Skipped    int
	Faulted    int
	OutOfScope int
	Events     int
}

// Transform classifies parsed lines and maps the in scope ones, keeping line order
// Skipped and Faulted lines are counted, out of scope lines are filtered out silently.
func Transform(results []sal.LineResult, bucket string, mapper Mapper) (events []APIActivity, stats TransformStats) {
	for _, result := range results {
		stats.Lines++
		switch result.Outcome {
		case sal.Skipped:
			stats.Skipped++
			continue
		case sal.Faulted:
			stats.Faulted++
			continue
		}
		stats.Parsed++
		classification := Classify(result.Entry)
		if !classification.InScope {
			stats.OutOfScope++
			continue
		}
		events = append(events, mapper.Map(result.Entry, classification, bucket))
	}
	stats.Events = len(events)
	return events, stats
}
