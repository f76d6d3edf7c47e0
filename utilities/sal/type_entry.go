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

package sal

// Entry one server access log line, fields kept as raw tokens
type Entry struct {
	BucketOwner    string
	CanonicalUser  string
	Timestamp      string
	RemoteIP       string
	Requester      string
	RequestID      string
	Operation      string
	Key            string
	RequestURI     string
	HTTPStatus     string
	ErrorCode      string
	BytesSent      string
	ObjectSize     string
	TotalTime      string
	TurnAroundTime string
	Referrer       string
	UserAgent      string
	VersionID      string
}

// Outcome of parsing one line
type Outcome int

// Parsed line yields an Entry, Skipped line is expected noise, Faulted line hit an unexpected failure
const (
	Parsed Outcome = iota
	Skipped
	Faulted
)

func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "parsed"
	case Skipped:
		return "skipped"
	case Faulted:
		return "faulted"
	}
	return "unknown"
}

// LineResult carries the outcome of one line. Entry is only meaningful when Outcome is Parsed
type LineResult struct {
	Number  int
	Outcome Outcome
	Entry   Entry
	Reason  error
}
