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

package server

import (
	"github.com/binkynet/BoardPins/pkg/metrics"
)

const (
	subSystem = "server"
)

var (
	// Total number of alias lookups per alias
	lookupTotal = metrics.MustRegisterCounterVec(subSystem,
		"lookup_total",
		"Total number of alias lookups per alias",
		"alias")
	// Total number of pin level changes per alias
	setLevelTotal = metrics.MustRegisterCounterVec(subSystem,
		"set_level_total",
		"Total number of pin level changes per alias",
		"alias")
	// Total number of requests containing an unknown alias
	unknownAliasTotal = metrics.MustRegisterCounter(subSystem,
		"unknown_alias_total",
		"Total number of requests containing an unknown alias")
)
