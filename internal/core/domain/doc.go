// Package domain defines the core business entities for proofdrift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: Extracted text for one rendering of the underlying work
//   - SimilarityMetrics: Whole-document similarity scores
//   - AlignmentResult: Per-sentence match/unmatch classification
//   - Comparison: The complete output of one comparison run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
