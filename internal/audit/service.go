package audit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/isapool/internal/pooling"
)

const (
	debugCheckingTemplateConstant   = "DEBUG: checking %s\n"
	sourceErrorTemplateConstant     = "%s: %w"
	sourceAuditedMessageConstant    = "investigation audited"
	logFieldSourceConstant          = "source"
	logFieldPooledContainerConstant = "pooled_container_count"
	logFieldPooledProcessConstant   = "pooled_process_count"
)

// ErrInputsMissing indicates a run without any investigation document.
var ErrInputsMissing = errors.New("no investigation files provided; pass file arguments or configure tools.pooling.inputs")

// Service coordinates loading, auditing and report rendering.
type Service struct {
	loader         InvestigationLoader
	auditorFactory AuditorFactory
	outputWriter   io.Writer
	errorWriter    io.Writer
	logger         *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
// A nil auditorFactory selects NewPoolingAuditor.
func NewService(loader InvestigationLoader, auditorFactory AuditorFactory, outputWriter io.Writer, errorWriter io.Writer, logger *zap.Logger) *Service {
	if auditorFactory == nil {
		auditorFactory = NewPoolingAuditor
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		loader:         loader,
		auditorFactory: auditorFactory,
		outputWriter:   outputWriter,
		errorWriter:    errorWriter,
		logger:         logger,
	}
}

// Run audits every input document in order and writes one combined report.
// The first load or audit failure aborts the run before anything is rendered.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if len(options.Inputs) == 0 {
		return ErrInputsMissing
	}

	format, formatError := ParseReportFormat(string(options.Format))
	if formatError != nil {
		return formatError
	}

	auditor := service.auditorFactory(options.Parallelism, service.logger)
	reports := make([]SourceReport, 0, len(options.Inputs))

	for _, inputPath := range options.Inputs {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		if options.DebugOutput {
			fmt.Fprintf(service.errorWriter, debugCheckingTemplateConstant, inputPath)
		}

		sourceReport, auditError := service.auditSource(auditor, inputPath)
		if auditError != nil {
			return auditError
		}
		reports = append(reports, sourceReport)
	}

	return renderReports(service.outputWriter, format, reports)
}

func (service *Service) auditSource(auditor PoolingAuditor, inputPath string) (SourceReport, error) {
	investigation, loadError := service.loader.LoadFile(inputPath)
	if loadError != nil {
		return SourceReport{}, fmt.Errorf(sourceErrorTemplateConstant, inputPath, loadError)
	}

	report, auditError := auditor.Audit(investigation)
	if auditError != nil {
		return SourceReport{}, fmt.Errorf(sourceErrorTemplateConstant, inputPath, auditError)
	}
	if report == nil {
		report = pooling.Report{}
	}

	service.logger.Info(
		sourceAuditedMessageConstant,
		zap.String(logFieldSourceConstant, inputPath),
		zap.Int(logFieldPooledContainerConstant, len(report)),
		zap.Int(logFieldPooledProcessConstant, report.ProcessCount()),
	)

	return SourceReport{Source: inputPath, Pooling: report}, nil
}
