package isajson

import (
	"fmt"
	"strings"

	"github.com/temirov/isapool/internal/workflowgraph"
)

const (
	entityIdentifierMissingTemplateConstant = "%s entry %q has no @id"
	materialEntityLabelConstant             = "material"
	dataFileEntityLabelConstant             = "data file"
)

// entityCatalog resolves @id references to workflow graph nodes.
type entityCatalog struct {
	nodes map[string]workflowgraph.Node
}

func newEntityCatalog() *entityCatalog {
	return &entityCatalog{nodes: make(map[string]workflowgraph.Node)}
}

func (catalog *entityCatalog) clone() *entityCatalog {
	duplicated := newEntityCatalog()
	for identifier, node := range catalog.nodes {
		duplicated.nodes[identifier] = node
	}
	return duplicated
}

func (catalog *entityCatalog) registerMaterials(materials materialsDocument) error {
	for _, group := range [][]entityDocument{materials.Sources, materials.Samples, materials.OtherMaterials} {
		for _, entity := range group {
			if registerError := catalog.register(entity, workflowgraph.NodeKindMaterial, materialEntityLabelConstant); registerError != nil {
				return registerError
			}
		}
	}
	return nil
}

func (catalog *entityCatalog) registerDataFiles(dataFiles []entityDocument) error {
	for _, entity := range dataFiles {
		if registerError := catalog.register(entity, workflowgraph.NodeKindDataFile, dataFileEntityLabelConstant); registerError != nil {
			return registerError
		}
	}
	return nil
}

func (catalog *entityCatalog) register(entity entityDocument, kind workflowgraph.NodeKind, entityLabel string) error {
	identifier := strings.TrimSpace(entity.Identifier)
	if len(identifier) == 0 {
		return fmt.Errorf(entityIdentifierMissingTemplateConstant, entityLabel, entity.Name)
	}
	catalog.nodes[identifier] = workflowgraph.Node{Identifier: identifier, Kind: kind, Label: entity.Name}
	return nil
}

func (catalog *entityCatalog) resolve(identifier string) (workflowgraph.Node, bool) {
	node, found := catalog.nodes[strings.TrimSpace(identifier)]
	return node, found
}
