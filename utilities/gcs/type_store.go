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

	"cloud.google.com/go/storage"
)

// ObjectReader read the full content of an object
type ObjectReader interface {
	ReadObject(ctx context.Context, bucketName string, objectName string) ([]byte, error)
}

// ObjectWriter create or replace an object
type ObjectWriter interface {
	WriteObject(ctx context.Context, bucketName string, objectName string, contentType string, content []byte) error
}

// Store Cloud Storage implementation of ObjectReader and ObjectWriter
type Store struct {
	Client *storage.Client
}

// NewStore wraps a storage client
func NewStore(client *storage.Client) *Store {
	return &Store{Client: client}
}
