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

package gcs

import (
	"fmt"
	"net/url"
)

// NotificationRecord identifies one source object to process, the key being percent-encoded
type NotificationRecord struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// RecordFromEvent builds the notification record of a GCS event
func RecordFromEvent(event Event) NotificationRecord {
	return NotificationRecord{
		Bucket: event.Bucket,
		Key:    url.QueryEscape(event.Name),
	}
}

// DecodedKey object name once percent-decoded, plus meaning space
func (record NotificationRecord) DecodedKey() (string, error) {
	key, err := url.QueryUnescape(record.Key)
	if err != nil {
		return "", fmt.Errorf("url.QueryUnescape %s %w", record.Key, err)
	}
	return key, nil
}

// String renders the record identity for logs
func (record NotificationRecord) String() string {
	return fmt.Sprintf("%s/%s", record.Bucket, record.Key)
}
