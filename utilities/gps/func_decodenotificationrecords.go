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
	"fmt"
	"net/url"

	"github.com/BrunoReboul/seclake/utilities/gcs"
	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// DecodeNotificationRecords extracts the objects to process from a notification payload
//
// Two shapes are supported:
//  - S3 event notification {"Records":[{"s3":{"bucket":{"name":".."},"object":{"key":".."}}}]}, keys already percent-encoded
//  - Cloud Storage JSON_API_V1 notification, a single object resource {"bucket":"..","name":".."}
func DecodeNotificationRecords(data []byte) (records []gcs.NotificationRecord, err error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("fastjson.ParseBytes %w", err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("notification is a JSON %s, want an object", v.Type())
	}

	if v.Exists("Records") {
		for i, record := range v.GetArray("Records") {
			bucket := string(record.GetStringBytes("s3", "bucket", "name"))
			key := string(record.GetStringBytes("s3", "object", "key"))
			if bucket == "" || key == "" {
				return nil, fmt.Errorf("Records[%d] missing s3 bucket name or object key", i)
			}
			records = append(records, gcs.NotificationRecord{
				Bucket: bucket,
				Key:    key,
			})
		}
		return records, nil
	}

	bucket := string(v.GetStringBytes("bucket"))
	name := string(v.GetStringBytes("name"))
	if bucket == "" || name == "" {
		return nil, fmt.Errorf("unknown notification format, no Records and no bucket/name")
	}
	return append(records, gcs.NotificationRecord{
		Bucket: bucket,
		Key:    url.QueryEscape(name),
	}), nil
}
