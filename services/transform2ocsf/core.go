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
	"os"
	"time"

	"cloud.google.com/go/functions/metadata"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/seclake/utilities/ffo"
	"github.com/BrunoReboul/seclake/utilities/gcs"
	"github.com/BrunoReboul/seclake/utilities/gps"
	"github.com/BrunoReboul/seclake/utilities/logging"
	"github.com/BrunoReboul/seclake/utilities/solution"
	"github.com/google/uuid"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	environment      string
	initID           string
	instanceName     string
	microserviceName string
	dispatcher       *Dispatcher
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.initID = fmt.Sprintf("%v", uuid.New())

	instanceDeployment := NewInstanceDeployment()
	err = ffo.ReadUnmarshalYAML(solution.PathToFunctionCode+solution.SettingsFileName, instanceDeployment)
	if err != nil {
		log.Println(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err),
			InitID:      global.initID,
		})
		return err
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           global.initID,
	})

	err = instanceDeployment.Situate(os.LookupEnv)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("instanceDeployment.Situate %v", err),
			InitID:           global.initID,
		})
		return err
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("storage.NewClient(ctx) %v", err),
			InitID:           global.initID,
		})
		return err
	}
	store := gcs.NewStore(storageClient)
	global.dispatcher = NewDispatcher(instanceDeployment, store, store)
	return nil
}

// EntryPoint is the function to be executed for each cloud function occurence triggered by a GCS event
func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event, global *Global) error {
	requestID, start := global.start(ctxEvent)
	if global.dispatcher == nil {
		global.logInitFailed(requestID)
		return nil
	}
	if gcsEvent.ResourceState == "not_exists" {
		global.logCancel(requestID, fmt.Sprintf("deleted object %v", gcsEvent.Name))
		return nil
	}
	if gcsEvent.Size == "0" {
		global.logCancel(requestID, fmt.Sprintf("empty object %v", gcsEvent.Name))
		return nil
	}
	records := []gcs.NotificationRecord{gcs.RecordFromEvent(gcsEvent)}
	global.finish(requestID, start, global.dispatcher.Dispatch(ctxEvent, requestID, records))
	return nil
}

// EntryPointPubSub is the function to be executed for each cloud function occurence triggered by a PubSub message
func EntryPointPubSub(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	requestID, start := global.start(ctxEvent)
	if global.dispatcher == nil {
		global.logInitFailed(requestID)
		return nil
	}
	if PubSubMessage.Attributes["eventType"] == "OBJECT_DELETE" {
		global.logCancel(requestID, fmt.Sprintf("deleted object %s", PubSubMessage.Attributes["objectId"]))
		return nil
	}
	records, err := gps.DecodeNotificationRecords(PubSubMessage.Data)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "noretry",
			Description:      fmt.Sprintf("gps.DecodeNotificationRecords %v", err),
			RequestID:        requestID,
		})
		return nil
	}
	global.finish(requestID, start, global.dispatcher.Dispatch(ctxEvent, requestID, records))
	return nil
}

// start logs the invocation start and returns the request id: the event id, or a new uuid when the context has no metadata
func (global *Global) start(ctxEvent context.Context) (requestID string, start time.Time) {
	start = time.Now()
	entry := logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "start",
		Now:              &start,
	}
	metadata, err := metadata.FromContext(ctxEvent)
	if err != nil || metadata.EventID == "" {
		requestID = fmt.Sprintf("%v", uuid.New())
	} else {
		requestID = metadata.EventID
		triggerTimestamp := metadata.Timestamp
		entry.TriggerTimestamp = &triggerTimestamp
		entry.TriggerAgeSeconds = start.Sub(triggerTimestamp).Seconds()
	}
	entry.RequestID = requestID
	log.Println(entry)
	return requestID, start
}

func (global *Global) finish(requestID string, start time.Time, results []RecordResult) {
	counts := make(map[Status]int)
	var eventCount, batchCount int
	for _, result := range results {
		counts[result.Status]++
		eventCount += result.EventsSent
		batchCount += result.BatchesWritten
	}
	now := time.Now()
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "finish",
		Description: fmt.Sprintf("records %d sent %d empty %d skipped %d failed %d",
			len(results),
			counts[Sent],
			counts[Empty],
			counts[Skipped],
			counts[Failed]),
		Now:            &now,
		RequestID:      requestID,
		EventCount:     eventCount,
		BatchCount:     batchCount,
		LatencySeconds: now.Sub(start).Seconds(),
	})
}

func (global *Global) logCancel(requestID string, description string) {
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "cancel",
		Description:      description,
		RequestID:        requestID,
	})
}

func (global *Global) logInitFailed(requestID string) {
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "noretry",
		Description:      "initialization failed, no record processed",
		InitID:           global.initID,
		RequestID:        requestID,
	})
}
