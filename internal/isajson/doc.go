// Package isajson loads ISA-JSON style investigation documents into the isa
// container model.
//
// Each study and assay process sequence is turned into a workflow graph:
// inputs feed the process that consumes them, and the process feeds every
// output that is not a data file. Processes without inputs or outputs are
// chained through their previousProcess and nextProcess links. The decoder
// accepts JSON as well as YAML renditions of the same document.
package isajson
