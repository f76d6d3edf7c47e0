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
Package lake prepares OCSF events for delivery to a security data lake

Events of one log object are cut in contiguous batches, each batch is one JSON document
{"events": [...]} written under

 ext/<log_type>/<YYYY>/<MM>/<DD>/<request_id>-<offset>.json

offset being the position of the first event of the batch in the event list, so that keys of the
batches of one invocation never collide.
*/
package lake
