// Package analysis computes the image authenticity verdict. The current
// implementation is a deterministic content-hash heuristic standing in for a
// real forensics engine; the surrounding contract (verdict, confidence,
// digest) is what integrators rely on.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/truthlens/truthlens/internal/api"
)

// Evaluate derives a verdict, a confidence in [0.7, 0.99], and the hex SHA-256
// digest of the image bytes. Identical input always yields identical output,
// which keeps client retries and tests stable.
func Evaluate(image []byte) (api.Verdict, float64, string) {
	h := sha256.Sum256(image)

	verdict := api.VerdictAuthentic
	switch {
	case h[0] < 13:
		verdict = api.VerdictManipulated
	case h[0] < 26:
		verdict = api.VerdictInconclusive
	}

	confidence := 0.70 + float64(h[1])/255*0.29

	return verdict, confidence, hex.EncodeToString(h[:])
}
