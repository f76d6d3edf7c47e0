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
	"log"
	"strings"
	"time"

	"github.com/BrunoReboul/seclake/utilities/erm"
	"github.com/BrunoReboul/seclake/utilities/gcs"
	"github.com/BrunoReboul/seclake/utilities/lake"
	"github.com/BrunoReboul/seclake/utilities/logging"
	"github.com/BrunoReboul/seclake/utilities/ocsf"
	"github.com/BrunoReboul/seclake/utilities/sal"
)

const contentType = "application/json"

// Dispatcher runs the transformation of notification records, one after the other
type Dispatcher struct {
	Reader        gcs.ObjectReader
	Writer        gcs.ObjectWriter
	Mapper        ocsf.Mapper
	SourceBucket  string
	KeyMarker     string
	LogType       string
	LakeBucket    string
	BatchCapacity int
	Now           func() time.Time
	// Log carries the fields common to every entry the dispatcher logs
	Log logging.Entry
}

// NewDispatcher builds a dispatcher from situated settings
func NewDispatcher(instanceDeployment *InstanceDeployment, reader gcs.ObjectReader, writer gcs.ObjectWriter) *Dispatcher {
	instance := instanceDeployment.Settings.Instance
	solutionSettings := instanceDeployment.Core.SolutionSettings
	return &Dispatcher{
		Reader:        reader,
		Writer:        writer,
		Mapper:        ocsf.NewMapper(instance.OCSF.Version),
		SourceBucket:  solutionSettings.Hosting.GCS.Buckets.AccessLogs.Name,
		KeyMarker:     instance.KeyMarker,
		LogType:       instance.LogTypeLabel,
		LakeBucket:    solutionSettings.Lake.BucketName,
		BatchCapacity: int(instance.BatchCapacity),
		Now:           time.Now,
		Log: logging.Entry{
			MicroserviceName: instanceDeployment.Core.ServiceName,
			InstanceName:     instanceDeployment.Core.InstanceName,
			Environment:      instanceDeployment.Core.EnvironmentName,
		},
	}
}

// Dispatch processes records in order. A failing record never stops the following ones.
func (dispatcher *Dispatcher) Dispatch(ctx context.Context, requestID string, records []gcs.NotificationRecord) (results []RecordResult) {
	for i, record := range records {
		result := dispatcher.dispatchRecord(ctx, recordRequestID(requestID, i), record)
		dispatcher.logResult(requestID, result)
		results = append(results, result)
	}
	return results
}

// recordRequestID keeps batch keys of different records of one invocation apart
func recordRequestID(requestID string, index int) string {
	if index == 0 {
		return requestID
	}
	return fmt.Sprintf("%s_%d", requestID, index)
}

func (dispatcher *Dispatcher) dispatchRecord(ctx context.Context, requestID string, record gcs.NotificationRecord) (result RecordResult) {
	result.Bucket = record.Bucket
	result.Key = record.Key
	defer func() {
		if r := recover(); r != nil {
			result.Status = Failed
			result.Reason = fmt.Errorf("recovered while processing record: %v", r)
		}
	}()

	key, err := record.DecodedKey()
	if err != nil {
		return failed(result, err)
	}
	result.Key = key

	content, err := dispatcher.Reader.ReadObject(ctx, record.Bucket, key)
	if err != nil {
		return failed(result, fmt.Errorf("ReadObject %w", err))
	}

	logType, ok := dispatcher.getLogType(record.Bucket, key)
	if !ok {
		result.Status = Skipped
		return result
	}
	result.LogType = logType

	text, err := sal.DecodeText(content)
	if err != nil {
		return failed(result, fmt.Errorf("sal.DecodeText %w", err))
	}
	lineResults := sal.ParseLines(text)
	dispatcher.logUnreadLines(requestID, result, lineResults)

	events, stats := ocsf.Transform(lineResults, record.Bucket, dispatcher.Mapper)
	result.Lines = stats
	if len(events) == 0 {
		result.Status = Empty
		return result
	}

	for _, batch := range lake.AssembleBatches(events, dispatcher.BatchCapacity, logType, requestID, dispatcher.now()) {
		document, err := batch.Document()
		if err != nil {
			return failed(result, fmt.Errorf("batch.Document offset %d %w", batch.Offset, err))
		}
		err = dispatcher.Writer.WriteObject(ctx, dispatcher.LakeBucket, batch.Key, contentType, document)
		if err != nil {
			return failed(result, fmt.Errorf("WriteObject %s %w", batch.Key, err))
		}
		result.BatchesWritten++
		result.EventsSent += len(batch.Events)

		entry := dispatcher.Log
		entry.Message = "batch_written"
		entry.Description = fmt.Sprintf("%s/%s", dispatcher.LakeBucket, batch.Key)
		entry.RequestID = requestID
		entry.Object = fmt.Sprintf("%s/%s", result.Bucket, result.Key)
		entry.EventCount = len(batch.Events)
		log.Println(entry)
	}
	result.Status = Sent
	return result
}

func (dispatcher *Dispatcher) now() time.Time {
	if dispatcher.Now == nil {
		return time.Now()
	}
	return dispatcher.Now()
}

func failed(result RecordResult, err error) RecordResult {
	result.Status = Failed
	result.Reason = err
	return result
}

// getLogType exact match on the source bucket, or the key marker found in the object name
func (dispatcher *Dispatcher) getLogType(bucket string, key string) (string, bool) {
	if dispatcher.SourceBucket != "" && bucket == dispatcher.SourceBucket {
		return dispatcher.LogType, true
	}
	if dispatcher.KeyMarker != "" && strings.Contains(key, dispatcher.KeyMarker) {
		return dispatcher.LogType, true
	}
	return "", false
}

func (dispatcher *Dispatcher) logUnreadLines(requestID string, result RecordResult, lineResults []sal.LineResult) {
	for _, lineResult := range lineResults {
		if lineResult.Outcome == sal.Parsed {
			continue
		}
		entry := dispatcher.Log
		entry.Severity = "WARNING"
		entry.Message = fmt.Sprintf("line_%s", lineResult.Outcome)
		if lineResult.Reason != nil {
			entry.Description = lineResult.Reason.Error()
		}
		entry.RequestID = requestID
		entry.Object = fmt.Sprintf("%s/%s", result.Bucket, result.Key)
		entry.LineNumber = lineResult.Number
		log.Println(entry)
	}
}

func (dispatcher *Dispatcher) logResult(requestID string, result RecordResult) {
	entry := dispatcher.Log
	entry.RequestID = requestID
	entry.Object = fmt.Sprintf("%s/%s", result.Bucket, result.Key)
	entry.LogType = result.LogType
	entry.EventCount = result.EventsSent
	entry.BatchCount = result.BatchesWritten
	switch result.Status {
	case Sent:
		entry.Message = "record_sent"
		entry.Description = fmt.Sprintf("lines %d parsed %d skipped %d faulted %d out_of_scope %d",
			result.Lines.Lines,
			result.Lines.Parsed,
			result.Lines.Skipped,
			result.Lines.Faulted,
			result.Lines.OutOfScope)
	case Empty:
		entry.Message = "record_empty"
		entry.Description = fmt.Sprintf("no in scope event in %d lines", result.Lines.Lines)
	case Skipped:
		entry.Severity = "WARNING"
		entry.Message = "record_skipped"
		entry.Description = "unknown log type"
	case Failed:
		entry.Severity = "ERROR"
		entry.Message = "record_failed"
		if result.Reason != nil {
			entry.Description = result.Reason.Error()
		}
		entry.Transient = erm.IsTransient(result.Reason)
	}
	log.Println(entry)
}
