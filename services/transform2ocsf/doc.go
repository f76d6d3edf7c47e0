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
Package transform2ocsf transform Terraform state access logs into OCSF API Activity events delivered to a security data lake

One access log line on a Terraform state object = one OCSF API Activity event.

Triggered by

Google Cloud Storage event when a new access log object is delivered, or a PubSub message carrying
an S3 event notification or a Cloud Storage JSON_API_V1 notification.

Instances

One per access logs bucket.

Output

- JSON documents {"events": [...]} of at most batchCapacity events each.

- Written in the lake bucket under ext/<log_type>/<YYYY>/<MM>/<DD>/<request_id>-<offset>.json

Cardinality

One-many: one access log object is transformed in zero to many batches.

Automatic retrying

No. Failures are logged per record, the function always completes.

Is recurssive

No.

Environment variables overriding the settings file

- OCSF_VERSION the OCSF schema version stamped on events.

- TERRAFORM_STATE_LOGS_BUCKET the access logs bucket in scope.

- SECURITY_LAKE_REGION and SECURITY_LAKE_ACCOUNT_ID used to name the lake bucket.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/seclake/services/transform2ocsf"
     "github.com/BrunoReboul/seclake/utilities/gcs"
 )
 var global transform2ocsf.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event) error {
     return transform2ocsf.EntryPoint(ctxEvent, gcsEvent, &global)
 }

 func init() {
     transform2ocsf.Initialize(ctx, &global)
 }

*/
package transform2ocsf
