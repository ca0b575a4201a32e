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
	"testing"

	"github.com/binkynet/BoardPins/pkg/gpio"
)

func TestGPIOTypeFor(t *testing.T) {
	tests := []struct {
		Machine  string
		HasSysfs bool
		Expected gpio.Type
	}{
		{"armv7l", true, gpio.TypeSysfs},
		{"aarch64", true, gpio.TypeSysfs},
		{"riscv64", true, gpio.TypeSysfs},
		{"armv7l", false, gpio.TypeVirtual},
		{"x86_64", true, gpio.TypeVirtual},
		{"", false, gpio.TypeVirtual},
	}
	for _, test := range tests {
		if got := gpioTypeFor(test.Machine, test.HasSysfs); got != test.Expected {
			t.Errorf("gpioTypeFor(%s, %v): expected %s, got %s", test.Machine, test.HasSysfs, test.Expected, got)
		}
	}
}
