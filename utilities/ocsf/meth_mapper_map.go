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
	"fmt"
	"strconv"

	"github.com/BrunoReboul/seclake/utilities/sal"
)

// Map builds the API Activity event of one in scope entry read from bucket
// Fields that cannot be derived fall back to defaults: status 200, counters 0, user agent unknown.
func (mapper Mapper) Map(entry sal.Entry, classification Classification, bucket string) APIActivity {
	version := mapper.Version
	if version == "" {
		version = DefaultVersion
	}
	status := parseDigits(entry.HTTPStatus, defaultHTTPStatus)
	activityID, activityName := getActivity(entry.Operation)

	var message *string
	if entry.ErrorCode != absent && entry.ErrorCode != "" {
		errorCode := entry.ErrorCode
		message = &errorCode
	}
	userAgent := entry.UserAgent
	if userAgent == "" || userAgent == absent {
		userAgent = unknownUserAgent
	}

	return APIActivity{
		Metadata: Metadata{
			Version: version,
			Product: Product{
				Name:       ProductName,
				VendorName: ProductVendorName,
			},
			EventCode:   entry.Operation,
			Profiles:    []string{Profile},
			LogName:     LogName,
			LogProvider: LogProvider,
		},
		ClassUID:     ClassUID,
		ClassName:    ClassName,
		CategoryUID:  CategoryUID,
		CategoryName: CategoryName,
		ActivityID:   activityID,
		ActivityName: activityName,
		TypeUID:      ClassUID*100 + activityID,
		SeverityID:   classification.SeverityID,
		Severity:     classification.Severity,
		Time:         sal.NormalizeTimestamp(entry.Timestamp, mapper.Now),
		API: API{
			Operation: entry.Operation,
			Service:   Service{Name: ServiceName},
			Response: Response{
				Code:    status,
				Message: message,
			},
		},
		Actor: Actor{
			User: User{
				UID:  entry.Requester,
				Type: ActorUserType,
			},
		},
		Cloud: Cloud{
			Provider: CloudProvider,
			Account:  Account{UID: entry.BucketOwner},
		},
		SrcEndpoint: Endpoint{IP: entry.RemoteIP},
		Resources: []Resource{
			{
				Type: ResourceType,
				UID:  fmt.Sprintf("%s/%s", bucket, entry.Key),
				Name: entry.Key,
			},
		},
		HTTPRequest: HTTPRequest{
			UserAgent:  userAgent,
			HTTPStatus: status,
		},
		Unmapped: Unmapped{
			RequestID:   entry.RequestID,
			BytesSent:   int64(parseDigits(entry.BytesSent, 0)),
			ObjectSize:  int64(parseDigits(entry.ObjectSize, 0)),
			TotalTimeMs: int64(parseDigits(entry.TotalTime, 0)),
		},
	}
}

// parseDigits reads a token made only of ASCII digits, else returns def
func parseDigits(token string, def int) int {
	if token == "" {
		return def
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return def
		}
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return def
	}
	return value
}
