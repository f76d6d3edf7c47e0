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
	"context"
	"fmt"
)

// WriteObject creates or replaces the object with content
func (store *Store) WriteObject(ctx context.Context, bucketName string, objectName string, contentType string, content []byte) error {
	storageObjectWriter := store.Client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	storageObjectWriter.ContentType = contentType
	_, err := storageObjectWriter.Write(content)
	if err != nil {
		storageObjectWriter.Close()
		return fmt.Errorf("storageObjectWriter.Write %s/%s %w", bucketName, objectName, err)
	}
	// the object is committed on Close
	err = storageObjectWriter.Close()
	if err != nil {
		return fmt.Errorf("storageObjectWriter.Close %s/%s %w", bucketName, objectName, err)
	}
	return nil
}
