// Copyright 2024 Ewout Prangsma
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Author Ewout Prangsma
//

package gpio

import (
	"github.com/binkynet/BoardPins/pkg/metrics"
)

const (
	subSystem = "gpio"
)

var (
	// Total number of times a GPIO line is opened
	linesOpenedTotal = metrics.MustRegisterCounterVec(subSystem,
		"lines_opened_total",
		"Total number of times a GPIO line is opened",
		"pin", "direction")
	// Total number of times opening a GPIO line failed
	linesOpenErrorTotal = metrics.MustRegisterCounterVec(subSystem,
		"lines_open_error_total",
		"Total number of times opening a GPIO line failed",
		"pin", "direction")
	// Number of active virtual board subscriptions
	subscribersGauge = metrics.MustRegisterGauge(subSystem,
		"virtual_subscribers",
		"Number of active virtual board subscriptions")
)
