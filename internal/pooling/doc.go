// Package pooling detects process pooling in workflow graphs.
//
// A process is pooled when more than one edge feeds into it. Detector inspects
// a single graph; Auditor walks an investigation's studies and assays in order
// and aggregates the non-empty detections into a Report keyed by container
// name. Neither component mutates the graphs it reads.
package pooling
