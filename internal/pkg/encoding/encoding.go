// Package encoding wraps the base64 data-URI framing for rendered
// metadata and provides byte-length accounting for variable-width
// on-chain integers.
package encoding

import (
	"encoding/base64"
	"math/big"
)

// Data-URI prefixes for the two document types the renderer emits.
const (
	JSONPrefix = "data:application/json;base64,"
	SVGPrefix  = "data:image/svg+xml;base64,"
)

// EncodeBase64 encodes data with the standard alphabet and '=' padding.
// Empty input yields an empty string.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 is the inverse of EncodeBase64.
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// JSONDataURI wraps a JSON document as a self-contained data URI.
func JSONDataURI(doc []byte) string {
	return JSONPrefix + EncodeBase64(doc)
}

// SVGDataURI wraps SVG markup as a self-contained data URI.
func SVGDataURI(svg string) string {
	return SVGPrefix + EncodeBase64([]byte(svg))
}

// BytesUsed returns the minimal big-endian byte count needed to
// represent v: 0 for zero, monotonic non-decreasing in v. v must be
// non-negative and at most 256 bits wide.
func BytesUsed(v *big.Int) int {
	if v == nil {
		return 0
	}
	return len(v.Bytes())
}

// BytesUsedSplit computes BytesUsed for a 256-bit value given as
// high/low 128-bit halves: the low half's count when high is zero,
// otherwise 16 plus the high half's count.
func BytesUsedSplit(high, low *big.Int) int {
	if high == nil || high.Sign() == 0 {
		return BytesUsed(low)
	}
	return 16 + BytesUsed(high)
}
