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

package pins

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// InvalidPinError is returned when a physical pin name cannot be parsed.
	InvalidPinError = errors.New("invalid physical pin")
	maskAny         = errors.WithStack
)

// UnknownAliasError is raised when a name or value is not one of the
// declared aliases.
type UnknownAliasError struct {
	// Name of the alias as it was given
	Name string
}

// Error implements the error interface.
func (e UnknownAliasError) Error() string {
	return fmt.Sprintf("unknown pin alias '%s'", e.Name)
}

// IsUnknownAlias returns true if the cause of the given error is
// an UnknownAliasError.
func IsUnknownAlias(err error) bool {
	_, ok := errors.Cause(err).(UnknownAliasError)
	return ok
}
