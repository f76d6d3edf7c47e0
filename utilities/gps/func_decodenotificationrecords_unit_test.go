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

package gps

import (
	"testing"

	"github.com/BrunoReboul/seclake/utilities/gcs"
)

func TestUnitDecodeNotificationRecords(t *testing.T) {
	var testCases = []struct {
		name      string
		data      string
		want      []gcs.NotificationRecord
		wantError bool
	}{
		{
			name: "s3OneRecord",
			data: `{"Records":[{"eventSource":"aws:s3","s3":{"bucket":{"name":"tf-logs"},"object":{"key":"logs%2F2019-02-06-00-00-38-ABC","size":1024}}}]}`,
			want: []gcs.NotificationRecord{
				{Bucket: "tf-logs", Key: "logs%2F2019-02-06-00-00-38-ABC"},
			},
		},
		{
			name: "s3TwoRecordsOrderKept",
			data: `{"Records":[
				{"s3":{"bucket":{"name":"tf-logs"},"object":{"key":"a"}}},
				{"s3":{"bucket":{"name":"other"},"object":{"key":"terraform-state+b"}}}
			]}`,
			want: []gcs.NotificationRecord{
				{Bucket: "tf-logs", Key: "a"},
				{Bucket: "other", Key: "terraform-state+b"},
			},
		},
		{
			name: "s3NoRecords",
			data: `{"Records":[]}`,
			want: nil,
		},
		{
			name:      "s3MissingKey",
			data:      `{"Records":[{"s3":{"bucket":{"name":"tf-logs"},"object":{}}}]}`,
			wantError: true,
		},
		{
			name: "gcsJSONAPIV1",
			data: `{"kind":"storage#object","id":"tf-logs/logs/a b/1","name":"logs/a b","bucket":"tf-logs","size":"10"}`,
			want: []gcs.NotificationRecord{
				{Bucket: "tf-logs", Key: "logs%2Fa+b"},
			},
		},
		{
			name:      "unknownShape",
			data:      `{"message":"hello"}`,
			wantError: true,
		},
		{
			name:      "notAnObject",
			data:      `["tf-logs"]`,
			wantError: true,
		},
		{
			name:      "invalidJSON",
			data:      `{"Records":`,
			wantError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			records, err := DecodeNotificationRecords([]byte(tc.data))
			if tc.wantError {
				if err == nil {
					t.Errorf("Want an error and got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Want NO error, got %v", err)
			}
			if len(records) != len(tc.want) {
				t.Fatalf("Want %d records got %d", len(tc.want), len(records))
			}
			for i := range tc.want {
				if records[i] != tc.want[i] {
					t.Errorf("record %d want %v got %v", i, tc.want[i], records[i])
				}
			}
		})
	}
}
