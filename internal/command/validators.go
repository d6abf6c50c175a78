// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	return oneOf(value, "text", "json", "yaml")
}

func FormatValidator(value any) error {
	return oneOf(value, "grouped", "blocks")
}

func oneOf(value any, valid ...string) error {
	if s, ok := value.(string); ok && slices.Contains(valid, s) {
		return nil
	}
	return fmt.Errorf("must be one of %v", valid)
}
