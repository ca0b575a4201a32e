//    Copyright 2018 Ewout Prangsma
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package environment

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/binkynet/BoardPins/pkg/gpio"
)

const sysfsGPIOPath = "/sys/class/gpio"

// AutoDetectGPIOType detects the default GPIO type based on the environment.
func AutoDetectGPIOType(log zerolog.Logger) gpio.Type {
	var name unix.Utsname
	if err := unix.Uname(&name); err != nil {
		// Fallback to virtual
		log.Debug().Err(err).Msg("Uname failed")
		return gpio.TypeVirtual
	}
	machine := unix.ByteSliceToString(name.Machine[:])
	_, err := os.Stat(sysfsGPIOPath)
	result := gpioTypeFor(machine, err == nil)
	log.Debug().
		Str("machine", machine).
		Str("gpio", string(result)).
		Msg("Detected GPIO type")
	return result
}
