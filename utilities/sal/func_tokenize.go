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

// Tokenize splits an access log line on spaces
// A token starting with '[' runs up to the matching ']' and a token starting with '"' runs up to the
// closing '"', backslash escapes included, so that the request time and quoted fields stay whole.
// An unterminated group runs to the end of the line.
func Tokenize(line string) []string {
	var tokens []string
	n := len(line)
	i := 0
	for i < n {
		if isSeparator(line[i]) {
			i++
			continue
		}
		start := i
		switch line[i] {
		case '[':
			i = groupEnd(line, i+1, ']')
		case '"':
			i = groupEnd(line, i+1, '"')
		}
		for i < n && !isSeparator(line[i]) {
			i++
		}
		tokens = append(tokens, line[start:i])
	}
	return tokens
}

// groupEnd returns the index following the closing byte, or len(line) when there is none
func groupEnd(line string, from int, closing byte) int {
	for i := from; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case closing:
			return i + 1
		}
	}
	return len(line)
}

func isSeparator(b byte) bool {
	return b == ' ' || b == '\t'
}
