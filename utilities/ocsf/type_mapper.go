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
	"time"
)

// Mapper builds API Activity events. Version is the OCSF schema version stamped on every event,
// Now is the clock used when an access log time cannot be read
type Mapper struct {
	Version string
	Now     func() time.Time
}

// NewMapper returns a Mapper using the wall clock, version defaults to DefaultVersion
func NewMapper(version string) Mapper {
	if version == "" {
		version = DefaultVersion
	}
	return Mapper{
		Version: version,
		Now:     time.Now,
	}
}
