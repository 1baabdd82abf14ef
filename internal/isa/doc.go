// Package isa defines the investigation, study, and assay containers that own
// workflow graphs.
package isa
