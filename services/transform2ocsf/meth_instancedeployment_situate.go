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
	"fmt"

	"github.com/BrunoReboul/seclake/utilities/validater"
)

// EnvOCSFVersion environment variable overriding the OCSF schema version
const EnvOCSFVersion = "OCSF_VERSION"

// Situate complement settings taking in account the situation for solution and instance settings, then validate them
func (instanceDeployment *InstanceDeployment) Situate(lookupEnv func(key string) (string, bool)) (err error) {
	if instanceDeployment.Core == nil {
		return fmt.Errorf("missing core settings")
	}
	instanceDeployment.Core.SolutionSettings.Situate(instanceDeployment.Core.EnvironmentName)
	instanceDeployment.Core.SolutionSettings.Override(lookupEnv)
	if value, ok := lookupEnv(EnvOCSFVersion); ok && value != "" {
		instanceDeployment.Settings.Instance.OCSF.Version = value
	}
	err = validater.ValidateStruct(instanceDeployment, "transform2ocsf")
	if err != nil {
		return fmt.Errorf("validater.ValidateStruct %w", err)
	}
	return nil
}
