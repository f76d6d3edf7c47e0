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
	"encoding/json"

	"github.com/BrunoReboul/seclake/utilities/ocsf"
)

// DefaultCapacity maximum number of events in a batch
const DefaultCapacity = 100

// Batch contiguous slice of events and the object name to write it to
type Batch struct {
	Key    string
	Offset int
	Events []ocsf.APIActivity
}

type document struct {
	Events []ocsf.APIActivity `json:"events"`
}

// Document renders the batch as the JSON document expected by the lake
func (batch Batch) Document() ([]byte, error) {
	return json.Marshal(document{Events: batch.Events})
}
