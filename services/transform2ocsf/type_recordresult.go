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

package transform2ocsf

import (
	"github.com/BrunoReboul/seclake/utilities/ocsf"
)

// Status final state of one notification record
type Status int

const (
	// Sent every batch of the record was written
	Sent Status = iota
	// Skipped the object is not a known log type
	Skipped
	// Empty no in scope line, nothing written
	Empty
	// Failed the record was aborted, see Reason
	Failed
)

func (s Status) String() string {
	switch s {
	case Sent:
		return "sent"
	case Skipped:
		return "skipped"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// RecordResult outcome of one notification record
type RecordResult struct {
	Bucket         string
	Key            string
	LogType        string
	Status         Status
	Reason         error
	Lines          ocsf.TransformStats
	EventsSent     int
	BatchesWritten int
}
