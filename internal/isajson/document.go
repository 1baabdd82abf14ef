package isajson

type investigationDocument struct {
	Identifier string          `yaml:"identifier"`
	Title      string          `yaml:"title"`
	Studies    []studyDocument `yaml:"studies"`
}

type studyDocument struct {
	Identifier      string            `yaml:"identifier"`
	Filename        string            `yaml:"filename"`
	Title           string            `yaml:"title"`
	Materials       materialsDocument `yaml:"materials"`
	DataFiles       []entityDocument  `yaml:"dataFiles"`
	ProcessSequence []processDocument `yaml:"processSequence"`
	Assays          []assayDocument   `yaml:"assays"`
}

type assayDocument struct {
	Identifier      string             `yaml:"@id"`
	Filename        string             `yaml:"filename"`
	MeasurementType annotationDocument `yaml:"measurementType"`
	TechnologyType  annotationDocument `yaml:"technologyType"`
	Materials       materialsDocument  `yaml:"materials"`
	DataFiles       []entityDocument   `yaml:"dataFiles"`
	ProcessSequence []processDocument  `yaml:"processSequence"`
}

type materialsDocument struct {
	Sources        []entityDocument `yaml:"sources"`
	Samples        []entityDocument `yaml:"samples"`
	OtherMaterials []entityDocument `yaml:"otherMaterials"`
}

type annotationDocument struct {
	AnnotationValue string `yaml:"annotationValue"`
}

type entityDocument struct {
	Identifier string `yaml:"@id"`
	Name       string `yaml:"name"`
}

type processDocument struct {
	Identifier       string           `yaml:"@id"`
	Name             string           `yaml:"name"`
	ExecutesProtocol entityDocument   `yaml:"executesProtocol"`
	Inputs           []entityDocument `yaml:"inputs"`
	Outputs          []entityDocument `yaml:"outputs"`
	PreviousProcess  *entityDocument  `yaml:"previousProcess"`
	NextProcess      *entityDocument  `yaml:"nextProcess"`
}

func (process processDocument) label() string {
	if len(process.Name) > 0 {
		return process.Name
	}
	return process.ExecutesProtocol.Identifier
}
