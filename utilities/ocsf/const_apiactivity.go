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

// Schema constants shared by every event
const (
	DefaultVersion = "1.1.0"

	ClassUID     = 3005
	ClassName    = "API Activity"
	CategoryUID  = 3
	CategoryName = "Identity & Access Management"

	ProductName       = "AWS S3 Access Logs"
	ProductVendorName = "AWS"
	LogName           = "S3 Access Logs"
	LogProvider       = "AWS S3"
	ServiceName       = "s3.amazonaws.com"
	CloudProvider     = "AWS"
	ActorUserType     = "IAMUser"
	ResourceType      = "s3-object"
	Profile           = "cloud"

	SeverityIDMedium = 2
	SeverityIDHigh   = 3
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"

	defaultHTTPStatus = 200
	unknownUserAgent  = "unknown"
	absent            = "-"
)

// Activity ids of the API Activity class
const (
	ActivityCreate = 1
	ActivityRead   = 2
	ActivityUpdate = 3
	ActivityDelete = 4
	ActivityOther  = 99
)
