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

// APIActivity OCSF API Activity event, class 3005
// https://schema.ocsf.io/1.1.0/classes/api_activity
type APIActivity struct {
	Metadata     Metadata    `json:"metadata"`
	ClassUID     int         `json:"class_uid"`
	ClassName    string      `json:"class_name"`
	CategoryUID  int         `json:"category_uid"`
	CategoryName string      `json:"category_name"`
	ActivityID   int         `json:"activity_id"`
	ActivityName string      `json:"activity_name"`
	TypeUID      int         `json:"type_uid"`
	SeverityID   int         `json:"severity_id"`
	Severity     string      `json:"severity"`
	Time         int64       `json:"time"`
	API          API         `json:"api"`
	Actor        Actor       `json:"actor"`
	Cloud        Cloud       `json:"cloud"`
	SrcEndpoint  Endpoint    `json:"src_endpoint"`
	Resources    []Resource  `json:"resources"`
	HTTPRequest  HTTPRequest `json:"http_request"`
	Unmapped     Unmapped    `json:"unmapped"`
}

// Metadata describes the event producer
type Metadata struct {
	Version     string   `json:"version"`
	Product     Product  `json:"product"`
	EventCode   string   `json:"event_code"`
	Profiles    []string `json:"profiles"`
	LogName     string   `json:"log_name"`
	LogProvider string   `json:"log_provider"`
}

// Product reporting the event
type Product struct {
	Name       string `json:"name"`
	VendorName string `json:"vendor_name"`
}

// API call details
type API struct {
	Operation string   `json:"operation"`
	Service   Service  `json:"service"`
	Response  Response `json:"response"`
}

// Service serving the API call
type Service struct {
	Name string `json:"name"`
}

// Response of the API call. Message is nil when the log has no error code
type Response struct {
	Code    int     `json:"code"`
	Message *string `json:"message,omitempty"`
}

// Actor who performed the call
type Actor struct {
	User User `json:"user"`
}

// User identity
type User struct {
	UID  string `json:"uid"`
	Type string `json:"type"`
}

// Cloud environment
type Cloud struct {
	Provider string  `json:"provider"`
	Account  Account `json:"account"`
}

// Account owning the resource
type Account struct {
	UID string `json:"uid"`
}

// Endpoint network endpoint
type Endpoint struct {
	IP string `json:"ip"`
}

// Resource targeted by the call
type Resource struct {
	Type string `json:"type"`
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// HTTPRequest details
type HTTPRequest struct {
	UserAgent  string `json:"user_agent"`
	HTTPStatus int    `json:"http_status"`
}

// Unmapped access log fields without an OCSF attribute
type Unmapped struct {
	RequestID   string `json:"request_id"`
	BytesSent   int64  `json:"bytes_sent"`
	ObjectSize  int64  `json:"object_size"`
	TotalTimeMs int64  `json:"total_time_ms"`
}
