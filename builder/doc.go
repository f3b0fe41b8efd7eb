// Package builder generates the random ini/fin graphs that conelab explores.
//
// A build starts from Settings (usually loaded from YAML and validated with
// go-playground/validator), creates TotalCnt nodes, picks IniCnt of them as
// ini nodes and grows edges breadth-first from that frontier:
//
//   - every frontier node that has not been expanded yet samples an
//     out-degree, from [1, MaxOutDegree) for ini nodes and [0, MaxOutDegree)
//     for the rest;
//   - each edge goes to a uniformly random node of the whole graph, so
//     cycles and self-loops are possible;
//   - with NoTwinEdges a draw that would duplicate an existing (from, to)
//     pair is skipped;
//   - the targets form the next frontier, and growth stops once a whole
//     pass expands no new node.
//
// Finally FinCnt nodes are drawn from the nodes that were ever targeted
// (ini nodes excluded), retrying on duplicate draws. Ini and fin nodes are
// renamed with IniPrefix and FinPrefix so they can be recovered from names
// alone after structural edits.
//
// Determinism: a build is a pure function of Settings and the RNG. Pass
// WithSeed for reproducible graphs; Build refuses to run without an RNG.
//
// Observability: Build opens an OpenTelemetry span, records build counters
// and size histograms, and logs through log/slog (WithLogger).
package builder
