// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "v1.2.3", resolve("v1.2.3"))
	assert.NotEmpty(t, resolve(""))
	assert.NotEmpty(t, Version)
}
