//go:build unit

package chaos_test

import (
	"testing"

	"order-service/internal/pkg/chaos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjector_Disabled(t *testing.T) {
	// A disabled injector must never fail, for any threshold value.
	for _, threshold := range []float64{-1, 0, 0.0001, 0.5, 0.75, 1, 2} {
		injector := chaos.NewInjector(false, threshold)
		for i := 0; i < 10000; i++ {
			require.NoError(t, injector.MaybeFail())
		}
	}
}

func TestInjector_Enabled(t *testing.T) {
	t.Run("fails when the draw exceeds the threshold", func(t *testing.T) {
		injector := chaos.NewInjector(true, 0.75, chaos.WithDraw(func() float64 { return 0.9 }))

		err := injector.MaybeFail()

		require.Error(t, err)
		assert.ErrorIs(t, err, chaos.ErrInjected)
	})

	t.Run("passes when the draw is at or below the threshold", func(t *testing.T) {
		injector := chaos.NewInjector(true, 0.75, chaos.WithDraw(func() float64 { return 0.75 }))

		assert.NoError(t, injector.MaybeFail())
	})

	t.Run("defaults out-of-range thresholds", func(t *testing.T) {
		// 0.8 would fail with the default 0.75 threshold but not with a
		// claimed threshold of 2, which must be rejected.
		injector := chaos.NewInjector(true, 2, chaos.WithDraw(func() float64 { return 0.8 }))

		assert.ErrorIs(t, injector.MaybeFail(), chaos.ErrInjected)
	})

	t.Run("roughly one quarter of draws fail at the default threshold", func(t *testing.T) {
		injector := chaos.NewInjector(true, chaos.DefaultThreshold)

		failures := 0
		const trials = 10000
		for i := 0; i < trials; i++ {
			if injector.MaybeFail() != nil {
				failures++
			}
		}

		// Loose bounds; this guards the direction of the comparison, not
		// the exact rate.
		assert.Greater(t, failures, trials/10)
		assert.Less(t, failures, trials/2)
	})
}
