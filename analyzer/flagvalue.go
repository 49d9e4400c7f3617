// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"strconv"

	"fillmore-labs.com/initguard/internal/config"
)

// maskValue is a boolean [flag.Value] toggling one flag of a [config.BitMask].
type maskValue[T config.Flag] struct {
	mask *config.BitMask[T]
	flag T
}

func newMaskValue[T config.Flag](mask *config.BitMask[T], flag T) maskValue[T] {
	return maskValue[T]{mask: mask, flag: flag}
}

// Set implements [flag.Value].
func (f maskValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.flag, b)

	return nil
}

// String implements [flag.Value].
func (f maskValue[_]) String() string {
	if f.mask == nil {
		return "false" // zero value used by [flag.PrintDefaults]
	}

	return strconv.FormatBool(f.mask.Enabled(f.flag))
}

// Get implements [flag.Getter].
func (f maskValue[_]) Get() any {
	return f.mask != nil && f.mask.Enabled(f.flag)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f maskValue[_]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
