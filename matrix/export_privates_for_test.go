// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers (normalize, classify, gatherOptions) to
//     matrix_test only, without widening the production API.
//   - The file name ends in _test.go, so it never reaches production builds.

var (
	// ExportedNormalize exposes the cell normalization policy.
	ExportedNormalize = normalize
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicLabelEmpty_TestOnly      = panicLabelEmpty
	PanicTruncateInvalid_TestOnly = panicTruncateInvalid
	PanicCornerInvalid_TestOnly   = panicCornerInvalid
)

// Operand kind names for classify assertions.
const (
	KindInvalid_TestOnly = "invalid"
	KindMatrix_TestOnly  = "matrix"
	KindBuffer_TestOnly  = "buffer"
	KindScalar_TestOnly  = "scalar"
)

// Classify_TestOnly returns the operand kind name of v.
func Classify_TestOnly(v any) string {
	switch classify(v) {
	case kindMatrix:
		return KindMatrix_TestOnly
	case kindBuffer:
		return KindBuffer_TestOnly
	case kindScalar:
		return KindScalar_TestOnly
	}

	return KindInvalid_TestOnly
}

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Label         string
	TruncateAbove int
	Corner        int
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after gatherOptions.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Label: o.label, TruncateAbove: o.truncateAbove, Corner: o.corner}
}
