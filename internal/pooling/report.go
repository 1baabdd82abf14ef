package pooling

import (
	"encoding/json"
	"fmt"
)

const entryKeyCountTemplateConstant = "pooling report entry must contain exactly one container, found %d"

// Entry lists the pooled processes found in one container's graph.
type Entry struct {
	ContainerName      string
	ProcessIdentifiers []string
}

// Report is the ordered outcome of a pooling audit. Containers without pooling are absent.
type Report []Entry

// MarshalJSON encodes the entry as a single-key object mapping the container to its processes.
func (entry Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entry.mapping())
}

// UnmarshalJSON decodes a single-key object produced by MarshalJSON.
func (entry *Entry) UnmarshalJSON(data []byte) error {
	var mapping map[string][]string
	if decodeError := json.Unmarshal(data, &mapping); decodeError != nil {
		return decodeError
	}
	if len(mapping) != 1 {
		return fmt.Errorf(entryKeyCountTemplateConstant, len(mapping))
	}
	for containerName, processIdentifiers := range mapping {
		entry.ContainerName = containerName
		entry.ProcessIdentifiers = processIdentifiers
	}
	return nil
}

// MarshalYAML encodes the entry with the same single-key shape as MarshalJSON.
func (entry Entry) MarshalYAML() (interface{}, error) {
	return entry.mapping(), nil
}

func (entry Entry) mapping() map[string][]string {
	processIdentifiers := entry.ProcessIdentifiers
	if processIdentifiers == nil {
		processIdentifiers = []string{}
	}
	return map[string][]string{entry.ContainerName: processIdentifiers}
}

// IsEmpty reports whether the audit found no pooling at all.
func (report Report) IsEmpty() bool {
	return len(report) == 0
}

// ContainerNames returns the reported container names in report order.
func (report Report) ContainerNames() []string {
	containerNames := make([]string, 0, len(report))
	for _, entry := range report {
		containerNames = append(containerNames, entry.ContainerName)
	}
	return containerNames
}

// ProcessCount returns the number of pooled processes across all entries.
func (report Report) ProcessCount() int {
	processCount := 0
	for _, entry := range report {
		processCount += len(entry.ProcessIdentifiers)
	}
	return processCount
}
