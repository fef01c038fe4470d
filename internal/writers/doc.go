// Package writers turns shaped structures and regression reports into
// serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text, TSV, JSON/JSONL/YAML, pretty).
//   - The core stays domain-only; the pipeline stays orchestration-only.
//   - Structured formats go through pkg/api (v1) for a stable wire format.
package writers
