package audit

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/isapool/internal/isa"
	"github.com/temirov/isapool/internal/pooling"
)

const unsupportedReportFormatTemplateConstant = "unsupported report format %q"

// ReportFormat enumerates the supported report encodings.
type ReportFormat string

// Supported report formats.
const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

// SupportedReportFormats lists the report formats in the order shown to users.
func SupportedReportFormats() []string {
	return []string{string(ReportFormatCSV), string(ReportFormatJSON), string(ReportFormatYAML)}
}

// ParseReportFormat converts user input into a ReportFormat. Blank input selects CSV.
func ParseReportFormat(rawFormat string) (ReportFormat, error) {
	normalizedFormat := ReportFormat(strings.ToLower(strings.TrimSpace(rawFormat)))
	switch normalizedFormat {
	case "":
		return ReportFormatCSV, nil
	case ReportFormatCSV, ReportFormatJSON, ReportFormatYAML:
		return normalizedFormat, nil
	default:
		return "", fmt.Errorf(unsupportedReportFormatTemplateConstant, rawFormat)
	}
}

// CommandOptions captures the parameters of a pooling audit run.
type CommandOptions struct {
	Inputs      []string
	Format      ReportFormat
	Parallelism int
	DebugOutput bool
}

// InvestigationLoader reads investigation documents from disk.
type InvestigationLoader interface {
	LoadFile(filePath string) (*isa.Investigation, error)
}

// PoolingAuditor audits a loaded investigation.
type PoolingAuditor interface {
	Audit(investigation *isa.Investigation) (pooling.Report, error)
}

// AuditorFactory builds the auditor used for a run.
type AuditorFactory func(parallelism int, logger *zap.Logger) PoolingAuditor

// NewPoolingAuditor is the default AuditorFactory.
func NewPoolingAuditor(parallelism int, logger *zap.Logger) PoolingAuditor {
	return pooling.NewAuditor(pooling.WithParallelism(parallelism), pooling.WithLogger(logger))
}

// SourceReport pairs an input document with its pooling report.
type SourceReport struct {
	Source  string         `json:"source" yaml:"source"`
	Pooling pooling.Report `json:"pooling" yaml:"pooling"`
}

// PoolingReportRow models a single CSV report line.
type PoolingReportRow struct {
	Source            string
	ContainerName     string
	ProcessIdentifier string
}

// CSVRecord returns the row formatted for CSV encoding.
func (row PoolingReportRow) CSVRecord() []string {
	return []string{row.Source, row.ContainerName, row.ProcessIdentifier}
}
