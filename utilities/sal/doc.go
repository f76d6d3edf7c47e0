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
Package sal reads object storage server access logs

A log object holds one request per line. Fields are separated by single spaces, except the request time
which is enclosed in brackets, and the request-URI, referrer and user agent which are enclosed in double
quotes. Each line is tokenized with this grammar in mind and exposed as an Entry with named fields.

Lines are isolated from each other: a short or pathological line yields a Skipped or Faulted LineResult
and parsing goes on with the next line.
*/
package sal
