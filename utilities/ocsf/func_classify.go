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
	"strings"

	"github.com/BrunoReboul/seclake/utilities/sal"
)

// Classification tells if an entry deals with terraform state and how severe it is
type Classification struct {
	InScope    bool
	SeverityID int
	Severity   string
}

// Classify an access log entry
// In scope when the key contains "terraform" (any case) or ".tfstate".
// High when the operation contains GET and the key contains ".tfstate", Medium otherwise.
func Classify(entry sal.Entry) Classification {
	lowerKey := strings.ToLower(entry.Key)
	classification := Classification{
		InScope:    strings.Contains(lowerKey, "terraform") || strings.Contains(lowerKey, ".tfstate"),
		SeverityID: SeverityIDMedium,
		Severity:   SeverityMedium,
	}
	// PUT and DELETE on state files stay Medium
	if strings.Contains(entry.Operation, "GET") && strings.Contains(entry.Key, ".tfstate") {
		classification.SeverityID = SeverityIDHigh
		classification.Severity = SeverityHigh
	}
	return classification
}

// getActivity derives the API Activity activity from an access log operation like REST.GET.OBJECT
func getActivity(operation string) (int, string) {
	op := strings.ToUpper(operation)
	switch {
	case strings.Contains(op, "DELETE"):
		return ActivityDelete, "Delete"
	case strings.Contains(op, "PUT.OBJECT"), strings.Contains(op, "POST"), strings.Contains(op, "COPY"):
		return ActivityCreate, "Create"
	case strings.Contains(op, "PUT"):
		return ActivityUpdate, "Update"
	case strings.Contains(op, "GET"), strings.Contains(op, "HEAD"):
		return ActivityRead, "Read"
	}
	return ActivityOther, "Other"
}
