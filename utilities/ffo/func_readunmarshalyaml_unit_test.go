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

package ffo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUnitReadUnmarshalYAML(t *testing.T) {
	type ocsfSettings struct {
		Version string `yaml:"version"`
	}
	type settings struct {
		OCSF          ocsfSettings `yaml:"ocsf"`
		BatchCapacity int64        `yaml:"batchCapacity"`
	}
	var testCases = []struct {
		name      string
		content   string
		noFile    bool
		want      settings
		wantError bool
	}{
		{
			name:    "valid",
			content: "ocsf:\n  version: 1.1.0\nbatchCapacity: 100\n",
			want:    settings{OCSF: ocsfSettings{Version: "1.1.0"}, BatchCapacity: 100},
		},
		{
			name:    "partial",
			content: "batchCapacity: 50\n",
			want:    settings{BatchCapacity: 50},
		},
		{
			name:      "notYAML",
			content:   "batchCapacity: [\n",
			wantError: true,
		},
		{
			name:      "wrongType",
			content:   "batchCapacity: hundred\n",
			wantError: true,
		},
		{
			name:      "missingFile",
			noFile:    true,
			wantError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if !tc.noFile {
				if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
					t.Fatalf("os.WriteFile %v", err)
				}
			}
			var s settings
			err := ReadUnmarshalYAML(path, &s)
			if tc.wantError {
				if err == nil {
					t.Errorf("Want an error and got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Want NO error, got %v", err)
			}
			if s != tc.want {
				t.Errorf("Want %v got %v", tc.want, s)
			}
		})
	}
}
