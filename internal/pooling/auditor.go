package pooling

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/isapool/internal/isa"
	"github.com/temirov/isapool/internal/workflowgraph"
)

const (
	checkingContainerMessageConstant     = "checking container"
	auditCompletedMessageConstant        = "pooling audit completed"
	logFieldContainerNameConstant        = "container_name"
	logFieldContainerCountConstant       = "container_count"
	logFieldPooledContainerCountConstant = "pooled_container_count"
	logFieldParallelismConstant          = "parallelism"
	studyMissingTemplateConstant         = "study at position %d: %w"
	assayMissingTemplateConstant         = "assay at position %d of study %s: %w"
	graphMissingTemplateConstant         = "%s: %w"
	sequentialParallelismConstant        = 1
)

var (
	// ErrInvestigationMissing indicates Audit was called without an investigation.
	ErrInvestigationMissing = errors.New("investigation must be provided")

	// ErrContainerMissing indicates a nil study or assay inside the investigation.
	ErrContainerMissing = errors.New("container is missing")

	// ErrContainerGraphMissing indicates a study or assay without a workflow graph.
	ErrContainerGraphMissing = errors.New("container has no workflow graph")
)

// AuditorOption customizes an Auditor.
type AuditorOption func(*Auditor)

// WithLogger routes detection notices and progress messages to logger.
func WithLogger(logger *zap.Logger) AuditorOption {
	return func(auditor *Auditor) {
		if logger != nil {
			auditor.logger = logger
		}
	}
}

// WithParallelism bounds the number of graphs inspected concurrently.
// Values below one fall back to sequential inspection.
func WithParallelism(parallelism int) AuditorOption {
	return func(auditor *Auditor) {
		if parallelism < sequentialParallelismConstant {
			parallelism = sequentialParallelismConstant
		}
		auditor.parallelism = parallelism
	}
}

// Auditor runs the Detector over every study and assay graph of an investigation.
type Auditor struct {
	logger      *zap.Logger
	parallelism int
	detector    *Detector
}

type auditTarget struct {
	containerName string
	graph         *workflowgraph.Graph
}

// NewAuditor constructs an Auditor.
func NewAuditor(options ...AuditorOption) *Auditor {
	auditor := &Auditor{
		logger:      zap.NewNop(),
		parallelism: sequentialParallelismConstant,
	}
	for _, option := range options {
		if option != nil {
			option(auditor)
		}
	}
	auditor.detector = NewDetector(auditor.logger)
	return auditor
}

// Audit returns one entry per study or assay whose graph contains pooled processes.
// Studies are visited in order, each study's own graph before its assays' graphs.
// A missing container or graph aborts the audit without a partial report.
func (auditor *Auditor) Audit(investigation *isa.Investigation) (Report, error) {
	targets, targetsError := collectAuditTargets(investigation)
	if targetsError != nil {
		return nil, targetsError
	}

	detections, detectionError := auditor.detectAll(targets)
	if detectionError != nil {
		return nil, detectionError
	}

	report := make(Report, 0)
	for targetIndex := range targets {
		if len(detections[targetIndex]) == 0 {
			continue
		}
		report = append(report, Entry{
			ContainerName:      targets[targetIndex].containerName,
			ProcessIdentifiers: detections[targetIndex],
		})
	}

	auditor.logger.Debug(
		auditCompletedMessageConstant,
		zap.Int(logFieldContainerCountConstant, len(targets)),
		zap.Int(logFieldPooledContainerCountConstant, len(report)),
		zap.Int(logFieldParallelismConstant, auditor.parallelism),
	)

	return report, nil
}

func (auditor *Auditor) detectAll(targets []auditTarget) ([][]string, error) {
	detections := make([][]string, len(targets))

	if auditor.parallelism <= sequentialParallelismConstant {
		for targetIndex := range targets {
			detections[targetIndex] = auditor.detectTarget(targets[targetIndex])
		}
		return detections, nil
	}

	var group errgroup.Group
	group.SetLimit(auditor.parallelism)
	for targetIndex := range targets {
		targetIndex := targetIndex
		group.Go(func() error {
			detections[targetIndex] = auditor.detectTarget(targets[targetIndex])
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}

	return detections, nil
}

func (auditor *Auditor) detectTarget(target auditTarget) []string {
	auditor.logger.Debug(checkingContainerMessageConstant, zap.String(logFieldContainerNameConstant, target.containerName))
	return auditor.detector.Detect(target.graph)
}

func collectAuditTargets(investigation *isa.Investigation) ([]auditTarget, error) {
	if investigation == nil {
		return nil, ErrInvestigationMissing
	}

	targets := make([]auditTarget, 0, len(investigation.Studies)+investigation.AssayCount())
	for studyIndex, study := range investigation.Studies {
		if study == nil {
			return nil, fmt.Errorf(studyMissingTemplateConstant, studyIndex, ErrContainerMissing)
		}
		if study.Graph == nil {
			return nil, fmt.Errorf(graphMissingTemplateConstant, study.ContainerName(), ErrContainerGraphMissing)
		}
		targets = append(targets, auditTarget{containerName: study.ContainerName(), graph: study.Graph})

		for assayIndex, assay := range study.Assays {
			if assay == nil {
				return nil, fmt.Errorf(assayMissingTemplateConstant, assayIndex, study.ContainerName(), ErrContainerMissing)
			}
			if assay.Graph == nil {
				return nil, fmt.Errorf(graphMissingTemplateConstant, assay.ContainerName(), ErrContainerGraphMissing)
			}
			targets = append(targets, auditTarget{containerName: assay.ContainerName(), graph: assay.Graph})
		}
	}

	return targets, nil
}
