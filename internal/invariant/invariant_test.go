// SPDX-License-Identifier: MIT
package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhull/internal/invariant"
)

func TestCheckPassesSilently(t *testing.T) {
	require.NotPanics(t, func() { invariant.Check(true, "unreachable") })
}

func TestCheckPanicsOnViolation(t *testing.T) {
	require.Panics(t, func() { invariant.Check(false, "broken") })
}
