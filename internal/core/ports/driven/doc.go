// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Extractor: Pulls plain text out of a document container format
//   - FuzzyScorer: Token-order-invariant string similarity
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SentenceTokenizer: Language-aware sentence boundaries; without it,
//     segmentation falls back to a deterministic heuristic
package driven
