//
// Copyright (c) 2025 Canonical Ltd
//
// Original implementation: Gustavo Niemeyer <niemeyer@canonical.com>
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

package matching

import (
	"errors"
	"fmt"
)

// errInvalidArgument is the unexported sentinel wrapped by ErrInvalidArgument.
var errInvalidArgument = errors.New("invalid argument")

// ErrInvalidArgument is returned when the caller supplies a malformed
// adjacency list: a negative vertex count, exactly one zero vertex count,
// an adjacency list whose length is not leftSize, or an edge whose
// right-hand endpoint falls outside [0, rightSize).
var ErrInvalidArgument = fmt.Errorf("matching: %w", errInvalidArgument)
