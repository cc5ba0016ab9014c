// Package domain defines the records the secrets resolver produces.
//
// # Decisions
//
// A Decision captures one development-machine classification: the machine
// name that was checked, the list file consulted (if any), where the answer
// came from and when. Decisions are appended to the journal so operators can
// see which machines resolved to which secrets directory over time.
//
// # Reports
//
// A Report is a point-in-time snapshot of the resolver state, rendered by the
// resolve command in text, JSON or YAML.
package domain
