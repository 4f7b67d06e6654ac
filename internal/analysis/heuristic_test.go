package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens/internal/api"
)

func TestEvaluate_Deterministic(t *testing.T) {
	img := []byte("the same image bytes")

	v1, c1, d1 := Evaluate(img)
	v2, c2, d2 := Evaluate(img)

	require.Equal(t, v1, v2)
	require.Equal(t, c1, c2)
	require.Equal(t, d1, d2)
}

func TestEvaluate_DigestMatchesContent(t *testing.T) {
	img := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	want := sha256.Sum256(img)

	_, _, digest := Evaluate(img)
	require.Equal(t, hex.EncodeToString(want[:]), digest)
}

func TestEvaluate_ConfidenceInRange(t *testing.T) {
	for _, img := range [][]byte{nil, []byte("a"), []byte("bb"), []byte("ccc")} {
		_, conf, _ := Evaluate(img)
		require.GreaterOrEqual(t, conf, 0.70)
		require.LessOrEqual(t, conf, 0.99)
	}
}

func TestEvaluate_VerdictIsKnown(t *testing.T) {
	_, _, _ = Evaluate([]byte("x"))
	v, _, _ := Evaluate([]byte("x"))
	require.True(t, v == api.VerdictAuthentic || v == api.VerdictManipulated || v == api.VerdictInconclusive)
}
