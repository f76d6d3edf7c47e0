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
	"reflect"
	"testing"
)

func TestUnitTokenize(t *testing.T) {
	var testCases = []struct {
		name string
		line string
		want []string
	}{
		{
			name: "empty",
			line: "",
			want: nil,
		},
		{
			name: "plain",
			line: "a b  c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "tabs",
			line: "a\tb",
			want: []string{"a", "b"},
		},
		{
			name: "bracketedTime",
			line: "owner [06/Feb/2019:00:00:38 +0000] 203.0.113.5",
			want: []string{"owner", "[06/Feb/2019:00:00:38 +0000]", "203.0.113.5"},
		},
		{
			name: "quoted",
			line: `key "GET /key HTTP/1.1" 200`,
			want: []string{"key", `"GET /key HTTP/1.1"`, "200"},
		},
		{
			name: "escapedQuote",
			line: `"agent \"x\" y" -`,
			want: []string{`"agent \"x\" y"`, "-"},
		},
		{
			name: "emptyQuotes",
			line: `"" -`,
			want: []string{`""`, "-"},
		},
		{
			name: "unterminatedQuote",
			line: `a "b c`,
			want: []string{"a", `"b c`},
		},
		{
			name: "quoteInsideToken",
			line: `a"b c"`,
			want: []string{`a"b`, `c"`},
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := Tokenize(tc.line)
			if !reflect.DeepEqual(tc.want, result) {
				t.Errorf("Want %q got %q", tc.want, result)
			}
		})
	}
}
