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
	"io"
)

// ReadObject returns the object content
func (store *Store) ReadObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	storageObjectReader, err := store.Client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("storageObject.NewReader %s/%s %w", bucketName, objectName, err)
	}
	defer storageObjectReader.Close()
	content, err := io.ReadAll(storageObjectReader)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll %s/%s %w", bucketName, objectName, err)
	}
	return content, nil
}
