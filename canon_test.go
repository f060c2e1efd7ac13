package twic_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GeminiLab/twic"
)

func TestFingerprint(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		build := func() twic.Value {
			return mp(kv("action", str("deploy")), kv("target", str("prod")))
		}
		require.Equal(t, twic.Fingerprint(build()), twic.Fingerprint(build()))
	})

	t.Run("prefix and shape", func(t *testing.T) {
		fp := twic.Fingerprint(mp())
		require.True(t, strings.HasPrefix(fp, "twic:"))
		require.Len(t, fp, len("twic:")+64)
	})

	t.Run("kind distinctions show up", func(t *testing.T) {
		require.NotEqual(t, twic.Fingerprint(num(1)), twic.Fingerprint(fl(1)))
		require.NotEqual(t, twic.Fingerprint(num(1)), twic.Fingerprint(str("1")))
		require.NotEqual(t, twic.Fingerprint(twic.Bool(true)), twic.Fingerprint(str("true")))
	})

	t.Run("entry order shows up", func(t *testing.T) {
		ab := mp(kv("a", num(1)), kv("b", num(2)))
		ba := mp(kv("b", num(2)), kv("a", num(1)))
		require.NotEqual(t, twic.Fingerprint(ab), twic.Fingerprint(ba))
	})

	t.Run("all NaNs agree", func(t *testing.T) {
		weird := math.Float64frombits(0x7FF8000000000001)
		require.True(t, math.IsNaN(weird))
		require.Equal(t, twic.Fingerprint(fl(math.NaN())), twic.Fingerprint(fl(weird)))
	})
}
