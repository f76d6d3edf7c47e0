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

/*
Package seclake Security Lake custom source for Terraform state access logs

## What

Transform the server access logs of the buckets holding Terraform state files into OCSF API Activity
events, and deliver them to a security data lake as a custom source.

### Use cases

1. Detect who reads a state file, state files often carry secrets in clear text
2. Keep an audit trail of state writes and deletions next to the other security sources
3. Correlate state access with the rest of the cloud activity using one event schema

## Why

- State files are the map of the infrastructure, reading one is high value for an attacker
- Access logs are raw text lines, they need a schema to be queried with the other lake sources

## Layout

- `services/transform2ocsf` the cloud function, triggered by Cloud Storage or PubSub notifications
- `utilities/sal` reading access log lines
- `utilities/ocsf` classifying lines and mapping them to OCSF events
- `utilities/lake` batching events and naming lake objects
*/
package seclake
