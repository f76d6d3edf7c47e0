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

import (
	"fmt"
	"strings"
)

// MinTokens is the minimum number of tokens a line needs to be read as an Entry
const MinTokens = 10

// absent is the access log marker for a field without value
const absent = "-"

// ParseLine reads one access log line
// Lines with less than MinTokens tokens are Skipped. An unexpected failure is recovered and reported as Faulted.
func ParseLine(line string) (result LineResult) {
	defer func() {
		if r := recover(); r != nil {
			result = LineResult{
				Outcome: Faulted,
				Reason:  fmt.Errorf("recovered while parsing line: %v", r),
			}
		}
	}()
	tokens := Tokenize(line)
	if len(tokens) < MinTokens {
		return LineResult{
			Outcome: Skipped,
			Reason:  fmt.Errorf("%d tokens, want at least %d", len(tokens), MinTokens),
		}
	}
	return LineResult{
		Outcome: Parsed,
		Entry:   newEntry(tokens),
	}
}

// newEntry maps tokens to fields. The request-URI is optional: when the token following the key is quoted
// it is the request-URI and the following fields move one position further.
func newEntry(tokens []string) Entry {
	t := fields(tokens)
	entry := Entry{
		BucketOwner:   t.at(0),
		CanonicalUser: t.at(1),
		Timestamp:     t.at(2),
		RemoteIP:      t.at(3),
		Requester:     t.at(4),
		RequestID:     t.at(5),
		Operation:     t.at(6),
		Key:           t.at(7),
	}
	i := 8
	if strings.HasPrefix(t.at(i), `"`) {
		entry.RequestURI = unquote(t.at(i))
		i++
	}
	entry.HTTPStatus = t.at(i)
	entry.ErrorCode = t.at(i + 1)
	entry.BytesSent = t.at(i + 2)
	entry.ObjectSize = t.at(i + 3)
	entry.TotalTime = t.at(i + 4)
	entry.TurnAroundTime = t.at(i + 5)
	entry.Referrer = unquote(t.at(i + 6))
	entry.UserAgent = unquote(t.at(i + 7))
	entry.VersionID = t.at(i + 8)
	return entry
}

type fields []string

// at returns the token at index i, or the absent marker when the line is shorter
func (f fields) at(i int) string {
	if i < 0 || i >= len(f) {
		return absent
	}
	return f[i]
}

func unquote(token string) string {
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		return token[1 : len(token)-1]
	}
	return strings.TrimPrefix(token, `"`)
}
