// Package audit runs pooling audits over investigation documents and renders the results.
//
// CommandBuilder wires the pooling Cobra command, Service drives loading, auditing and
// rendering programmatically, and the collaborator interfaces allow tests to replace the
// investigation loader and the auditor.
package audit
