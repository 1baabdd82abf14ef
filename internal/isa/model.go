package isa

import (
	"strings"

	"github.com/temirov/isapool/internal/workflowgraph"
)

// Investigation owns an ordered sequence of studies.
type Investigation struct {
	Identifier string
	Title      string
	Studies    []*Study
}

// Study is a container owning a workflow graph and zero or more assays.
type Study struct {
	Identifier string
	Filename   string
	Title      string
	Graph      *workflowgraph.Graph
	Assays     []*Assay
}

// Assay is a container owning a workflow graph. It belongs to exactly one study.
type Assay struct {
	Identifier      string
	Filename        string
	MeasurementType string
	TechnologyType  string
	Graph           *workflowgraph.Graph
}

// ContainerName returns the key under which the study is reported.
func (study *Study) ContainerName() string {
	if study == nil {
		return ""
	}
	return containerName(study.Filename, study.Identifier)
}

// ContainerName returns the key under which the assay is reported.
func (assay *Assay) ContainerName() string {
	if assay == nil {
		return ""
	}
	return containerName(assay.Filename, assay.Identifier)
}

// AssayCount returns the number of assays across all studies.
func (investigation *Investigation) AssayCount() int {
	if investigation == nil {
		return 0
	}
	assayCount := 0
	for _, study := range investigation.Studies {
		if study == nil {
			continue
		}
		assayCount += len(study.Assays)
	}
	return assayCount
}

func containerName(filename string, fallback string) string {
	trimmedFilename := strings.TrimSpace(filename)
	if len(trimmedFilename) > 0 {
		return trimmedFilename
	}
	return strings.TrimSpace(fallback)
}
