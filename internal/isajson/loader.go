package isajson

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/temirov/isapool/internal/isa"
)

const (
	documentReadErrorTemplateConstant         = "failed to read investigation document: %w"
	documentParseErrorTemplateConstant        = "failed to parse investigation document: %w"
	studyGraphErrorTemplateConstant           = "study %s: %w"
	assayGraphErrorTemplateConstant           = "assay %s: %w"
	unresolvedReferenceTemplateConstant       = "process %s references %s: %w"
	processIdentifierTemplateConstant         = "process at position %d: %w"
	processIdentifierConflictTemplateConstant = "process %s reuses the identifier of a %s entry"
	investigationLoadedMessageConstant        = "investigation loaded"
	logFieldInvestigationConstant             = "investigation_identifier"
	logFieldStudyCountConstant                = "study_count"
	logFieldAssayCountConstant                = "assay_count"
	logFieldDocumentPathConstant              = "document_path"
)

var (
	// ErrDocumentEmpty indicates that the input contained no document.
	ErrDocumentEmpty = errors.New("investigation document is empty")

	// ErrUnresolvedReference indicates a process referring to an unknown material, data file, or process.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrProcessIdentifierMissing indicates a process without an @id.
	ErrProcessIdentifierMissing = errors.New("process identifier is missing")
)

// Loader decodes investigation documents.
type Loader struct {
	logger *zap.Logger
}

// NewLoader constructs a Loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadFile reads and decodes the investigation document stored at filePath.
func (loader *Loader) LoadFile(filePath string) (*isa.Investigation, error) {
	documentFile, openError := os.Open(filePath)
	if openError != nil {
		return nil, fmt.Errorf(documentReadErrorTemplateConstant, openError)
	}
	defer documentFile.Close()

	investigation, loadError := loader.Load(documentFile)
	if loadError != nil {
		return nil, loadError
	}

	loader.resolveLogger().Debug(
		investigationLoadedMessageConstant,
		zap.String(logFieldDocumentPathConstant, filePath),
		zap.String(logFieldInvestigationConstant, investigation.Identifier),
		zap.Int(logFieldStudyCountConstant, len(investigation.Studies)),
		zap.Int(logFieldAssayCountConstant, investigation.AssayCount()),
	)

	return investigation, nil
}

// Load decodes a JSON or YAML investigation document and builds one workflow graph per study and assay.
func (loader *Loader) Load(reader io.Reader) (*isa.Investigation, error) {
	var document investigationDocument
	decodeError := yaml.NewDecoder(reader).Decode(&document)
	if errors.Is(decodeError, io.EOF) {
		return nil, ErrDocumentEmpty
	}
	if decodeError != nil {
		return nil, fmt.Errorf(documentParseErrorTemplateConstant, decodeError)
	}

	investigation := &isa.Investigation{
		Identifier: strings.TrimSpace(document.Identifier),
		Title:      strings.TrimSpace(document.Title),
		Studies:    make([]*isa.Study, 0, len(document.Studies)),
	}

	for studyIndex := range document.Studies {
		study, studyError := buildStudy(document.Studies[studyIndex])
		if studyError != nil {
			return nil, studyError
		}
		investigation.Studies = append(investigation.Studies, study)
	}

	return investigation, nil
}

func (loader *Loader) resolveLogger() *zap.Logger {
	if loader == nil || loader.logger == nil {
		return zap.NewNop()
	}
	return loader.logger
}

func buildStudy(document studyDocument) (*isa.Study, error) {
	study := &isa.Study{
		Identifier: strings.TrimSpace(document.Identifier),
		Filename:   strings.TrimSpace(document.Filename),
		Title:      strings.TrimSpace(document.Title),
		Assays:     make([]*isa.Assay, 0, len(document.Assays)),
	}

	studyCatalog := newEntityCatalog()
	if catalogError := studyCatalog.registerMaterials(document.Materials); catalogError != nil {
		return nil, fmt.Errorf(studyGraphErrorTemplateConstant, study.ContainerName(), catalogError)
	}
	if catalogError := studyCatalog.registerDataFiles(document.DataFiles); catalogError != nil {
		return nil, fmt.Errorf(studyGraphErrorTemplateConstant, study.ContainerName(), catalogError)
	}

	studyGraph, graphError := buildProcessGraph(studyCatalog.clone(), document.ProcessSequence)
	if graphError != nil {
		return nil, fmt.Errorf(studyGraphErrorTemplateConstant, study.ContainerName(), graphError)
	}
	study.Graph = studyGraph

	for assayIndex := range document.Assays {
		assayDocument := document.Assays[assayIndex]
		assay := &isa.Assay{
			Identifier:      strings.TrimSpace(assayDocument.Identifier),
			Filename:        strings.TrimSpace(assayDocument.Filename),
			MeasurementType: strings.TrimSpace(assayDocument.MeasurementType.AnnotationValue),
			TechnologyType:  strings.TrimSpace(assayDocument.TechnologyType.AnnotationValue),
		}

		assayCatalog := studyCatalog.clone()
		if catalogError := assayCatalog.registerMaterials(assayDocument.Materials); catalogError != nil {
			return nil, fmt.Errorf(assayGraphErrorTemplateConstant, assay.ContainerName(), catalogError)
		}
		if catalogError := assayCatalog.registerDataFiles(assayDocument.DataFiles); catalogError != nil {
			return nil, fmt.Errorf(assayGraphErrorTemplateConstant, assay.ContainerName(), catalogError)
		}

		assayGraph, assayGraphError := buildProcessGraph(assayCatalog, assayDocument.ProcessSequence)
		if assayGraphError != nil {
			return nil, fmt.Errorf(assayGraphErrorTemplateConstant, assay.ContainerName(), assayGraphError)
		}
		assay.Graph = assayGraph
		study.Assays = append(study.Assays, assay)
	}

	return study, nil
}
