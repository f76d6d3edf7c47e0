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
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/unicode"
)

var gzipMagic = []byte{0x1f, 0x8b}

// DecodeText turns the raw bytes of a log object into text
// gzip compressed objects are inflated, a leading byte order mark is dropped
// and ill-formed UTF-8 sequences are replaced by U+FFFD.
func DecodeText(data []byte) (string, error) {
	if bytes.HasPrefix(data, gzipMagic) {
		gzipReader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("gzip.NewReader %w", err)
		}
		defer gzipReader.Close()
		data, err = io.ReadAll(gzipReader)
		if err != nil {
			return "", fmt.Errorf("io.ReadAll(gzipReader) %w", err)
		}
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("UTF8BOM decoder %w", err)
	}
	return string(text), nil
}
