package audit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	csvHeaderSourceConstant            = "source"
	csvHeaderContainerConstant         = "container"
	csvHeaderProcessIdentifierConstant = "process_identifier"
	jsonIndentConstant                 = "  "
	yamlIndentConstant                 = 2
	renderErrorTemplateConstant        = "failed to render %s report: %w"
)

// renderReports writes the per-source reports to writer in the requested format.
func renderReports(writer io.Writer, format ReportFormat, reports []SourceReport) error {
	var renderError error
	switch format {
	case ReportFormatJSON:
		renderError = renderJSON(writer, reports)
	case ReportFormatYAML:
		renderError = renderYAML(writer, reports)
	case ReportFormatCSV, "":
		renderError = renderCSV(writer, reports)
	default:
		return fmt.Errorf(unsupportedReportFormatTemplateConstant, format)
	}
	if renderError != nil {
		return fmt.Errorf(renderErrorTemplateConstant, format, renderError)
	}
	return nil
}

func renderCSV(writer io.Writer, reports []SourceReport) error {
	csvWriter := csv.NewWriter(writer)
	header := []string{
		csvHeaderSourceConstant,
		csvHeaderContainerConstant,
		csvHeaderProcessIdentifierConstant,
	}
	if writeError := csvWriter.Write(header); writeError != nil {
		return writeError
	}

	for _, row := range reportRows(reports) {
		if writeError := csvWriter.Write(row.CSVRecord()); writeError != nil {
			return writeError
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func renderJSON(writer io.Writer, reports []SourceReport) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", jsonIndentConstant)
	return encoder.Encode(reports)
}

func renderYAML(writer io.Writer, reports []SourceReport) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(reports); encodeError != nil {
		return encodeError
	}
	return encoder.Close()
}

func reportRows(reports []SourceReport) []PoolingReportRow {
	var rows []PoolingReportRow
	for _, sourceReport := range reports {
		for _, entry := range sourceReport.Pooling {
			for _, processIdentifier := range entry.ProcessIdentifiers {
				rows = append(rows, PoolingReportRow{
					Source:            sourceReport.Source,
					ContainerName:     entry.ContainerName,
					ProcessIdentifier: processIdentifier,
				})
			}
		}
	}
	return rows
}
