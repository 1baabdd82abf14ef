// Package workflowgraph models experimental workflows as directed multigraphs
// of materials, data files, and processes.
//
// Graph keeps nodes in insertion order and records every edge, including
// parallel ones, so in-degree counts edges rather than distinct sources.
// Reader is the read-only capability consumed by analyses such as pooling
// detection.
package workflowgraph
