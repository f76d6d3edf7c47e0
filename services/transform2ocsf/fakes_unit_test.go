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

package transform2ocsf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BrunoReboul/seclake/utilities/ocsf"
)

const lakeBucket = "aws-security-data-lake-us-east-1-111111111111"

var fixedNow = time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)

type writtenObject struct {
	bucket      string
	name        string
	contentType string
	content     []byte
}

// fakeStore in memory objects keyed by bucket/name
type fakeStore struct {
	objects    map[string][]byte
	failWrites string
	writeErr   error
	written    []writtenObject
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (store *fakeStore) ReadObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	content, ok := store.objects[bucketName+"/"+objectName]
	if !ok {
		return nil, fmt.Errorf("storage: object doesn't exist")
	}
	return content, nil
}

func (store *fakeStore) WriteObject(ctx context.Context, bucketName string, objectName string, contentType string, content []byte) error {
	if store.failWrites != "" && strings.Contains(objectName, store.failWrites) {
		return store.writeErr
	}
	store.written = append(store.written, writtenObject{
		bucket:      bucketName,
		name:        objectName,
		contentType: contentType,
		content:     content,
	})
	return nil
}

type panicReader struct{}

func (panicReader) ReadObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	panic("reader exploded")
}

func newTestDispatcher(store *fakeStore) *Dispatcher {
	return &Dispatcher{
		Reader:        store,
		Writer:        store,
		Mapper:        ocsf.NewMapper(""),
		SourceBucket:  "tf-logs",
		KeyMarker:     "terraform-state",
		LogType:       "Terraform State Access Logs",
		LakeBucket:    lakeBucket,
		BatchCapacity: 100,
		Now:           func() time.Time { return fixedNow },
	}
}

func accessLogLine(requestID string, operation string, key string) string {
	return fmt.Sprintf(`owner1 owner1 [06/Feb/2019:00:00:38 +0000] 203.0.113.5 req1 %s %s %s "GET ..." 200 - 2662992 2662992 70`,
		requestID, operation, key)
}

func accessLog(lineCount int) []byte {
	var b strings.Builder
	for i := 0; i < lineCount; i++ {
		b.WriteString(accessLogLine(fmt.Sprintf("REQ%d", i), "REST.GET.OBJECT", "prod/terraform-state/network.tfstate"))
		b.WriteString("\n")
	}
	return []byte(b.String())
}
