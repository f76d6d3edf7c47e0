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
	"github.com/BrunoReboul/seclake/utilities/deploy"
	"github.com/BrunoReboul/seclake/utilities/lake"
	"github.com/BrunoReboul/seclake/utilities/ocsf"
)

// InstanceDeployment settings structure
type InstanceDeployment struct {
	Core     *deploy.Core `yaml:"core"`
	Settings struct {
		Instance struct {
			OCSF struct {
				Version string `yaml:"version" valid:"isNotZeroValue"`
			} `yaml:"ocsf"`
			BatchCapacity int64  `yaml:"batchCapacity" valid:"isPositive"`
			LogTypeLabel  string `yaml:"logTypeLabel" valid:"isNotZeroValue"`
			KeyMarker     string `yaml:"keyMarker" valid:"isNotZeroValue"`
		} `yaml:"instance"`
	} `yaml:"settings"`
}

// NewInstanceDeployment create deployment structure with default settings set
func NewInstanceDeployment() *InstanceDeployment {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Core = &deploy.Core{}
	instanceDeployment.Settings.Instance.OCSF.Version = ocsf.DefaultVersion
	instanceDeployment.Settings.Instance.BatchCapacity = lake.DefaultCapacity
	instanceDeployment.Settings.Instance.LogTypeLabel = "Terraform State Access Logs"
	instanceDeployment.Settings.Instance.KeyMarker = "terraform-state"
	return &instanceDeployment
}
