package audit_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/isapool/internal/audit"
	"github.com/temirov/isapool/internal/isa"
	pathutils "github.com/temirov/isapool/internal/utils/path"
)

const (
	poolingMissingInputsMessageConstant = "no investigation files provided; pass file arguments or configure tools.pooling.inputs"
	poolingWhitespaceArgumentConstant   = "   "
	poolingTildeArgumentConstant        = "~/isa/i_pooled.json"
	poolingHomeDirectoryConstant        = "/home/curator"
	poolingFixturePathConstant          = "../isajson/testdata/pooled_investigation.json"
)

const poolingFixtureCSVReportConstant = "source,container,process_identifier\n" +
	"../isajson/testdata/pooled_investigation.json,s_pool.txt,#process/collection\n" +
	"../isajson/testdata/pooled_investigation.json,a_pooled.txt,#process/pool-extract\n"

func TestCommandBuilderDisplaysHelpWhenInputsMissing(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name          string
		configuration audit.CommandConfiguration
		arguments     []string
	}{
		{
			name:          "configuration_and_arguments_missing",
			configuration: audit.CommandConfiguration{},
			arguments:     []string{},
		},
		{
			name:          "whitespace_arguments",
			configuration: audit.CommandConfiguration{Inputs: []string{" "}},
			arguments:     []string{poolingWhitespaceArgumentConstant},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			builder := audit.CommandBuilder{
				LoggerProvider:        func() *zap.Logger { return zap.NewNop() },
				ConfigurationProvider: func() audit.CommandConfiguration { return testCase.configuration },
				Loader:                &investigationLoaderStub{},
			}

			command, buildError := builder.Build()
			require.NoError(subTest, buildError)

			command.SetContext(context.Background())
			command.SetArgs(testCase.arguments)

			outputBuffer := &strings.Builder{}
			command.SetOut(outputBuffer)
			command.SetErr(outputBuffer)

			executionError := command.Execute()
			require.Error(subTest, executionError)
			require.Equal(subTest, poolingMissingInputsMessageConstant, executionError.Error())
			require.Contains(subTest, outputBuffer.String(), command.UseLine())
		})
	}
}

func TestCommandBuilderExpandsTildeInputs(testInstance *testing.T) {
	expectedPath := filepath.Join(poolingHomeDirectoryConstant, "isa", "i_pooled.json")

	loader := &investigationLoaderStub{investigations: map[string]*isa.Investigation{
		expectedPath: pooledInvestigation(testInstance),
	}}
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return poolingHomeDirectoryConstant, nil
	})

	builder := audit.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Loader:         loader,
		PathSanitizer:  pathutils.NewInputPathSanitizerWithExpander(homeExpander),
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	command.SetArgs([]string{poolingTildeArgumentConstant})

	outputBuffer := &strings.Builder{}
	command.SetOut(outputBuffer)
	command.SetErr(&strings.Builder{})

	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, []string{expectedPath}, loader.requestedPaths)
	require.Contains(testInstance, outputBuffer.String(), "s_pooled.txt,#process/pool")
}

func TestCommandBuilderMergesConfigurationAndFlags(testInstance *testing.T) {
	testCases := []struct {
		name                string
		configuration       audit.CommandConfiguration
		arguments           []string
		expectedPaths       []string
		expectedParallelism int
		expectedPrefix      string
		expectedDebug       bool
	}{
		{
			name: "configuration_only",
			configuration: audit.CommandConfiguration{
				Inputs:      []string{testInputPathConstant},
				Format:      "JSON",
				Parallelism: 2,
			},
			arguments:           []string{},
			expectedPaths:       []string{testInputPathConstant},
			expectedParallelism: 2,
			expectedPrefix:      "[",
		},
		{
			name: "arguments_and_flags_override_configuration",
			configuration: audit.CommandConfiguration{
				Inputs:      []string{testInputPathConstant},
				Format:      "json",
				Parallelism: 2,
			},
			arguments:           []string{"--format", "csv", "--parallelism", "4", "--debug", testSecondInputPathConstant},
			expectedPaths:       []string{testSecondInputPathConstant},
			expectedParallelism: 4,
			expectedPrefix:      "source,container,process_identifier",
			expectedDebug:       true,
		},
		{
			name: "configured_debug",
			configuration: audit.CommandConfiguration{
				Inputs: []string{testInputPathConstant},
				Format: "yaml",
				Debug:  true,
			},
			arguments:           []string{},
			expectedPaths:       []string{testInputPathConstant},
			expectedParallelism: 1,
			expectedPrefix:      "- source: /tmp/i_pooled.json",
			expectedDebug:       true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			loader := &investigationLoaderStub{investigations: map[string]*isa.Investigation{
				testInputPathConstant:       pooledInvestigation(subTest),
				testSecondInputPathConstant: plainInvestigation(subTest),
			}}
			recorder := &auditorFactoryRecorder{}

			builder := audit.CommandBuilder{
				ConfigurationProvider: func() audit.CommandConfiguration { return testCase.configuration },
				Loader:                loader,
				AuditorFactory:        recorder.build,
			}

			command, buildError := builder.Build()
			require.NoError(subTest, buildError)

			command.SetContext(context.Background())
			command.SetArgs(testCase.arguments)

			outputBuffer := &strings.Builder{}
			errorBuffer := &strings.Builder{}
			command.SetOut(outputBuffer)
			command.SetErr(errorBuffer)

			require.NoError(subTest, command.Execute())
			require.Equal(subTest, testCase.expectedPaths, loader.requestedPaths)
			require.Equal(subTest, testCase.expectedParallelism, recorder.receivedParallelism)
			require.True(subTest, strings.HasPrefix(outputBuffer.String(), testCase.expectedPrefix))
			require.Equal(subTest, testCase.expectedDebug, strings.Contains(errorBuffer.String(), "DEBUG: checking "))
		})
	}
}

func TestCommandBuilderRejectsUnsupportedFormat(testInstance *testing.T) {
	builder := audit.CommandBuilder{Loader: &investigationLoaderStub{}}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	command.SetArgs([]string{"--format", "xml", testInputPathConstant})
	command.SetOut(&strings.Builder{})
	command.SetErr(&strings.Builder{})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unsupported value \"xml\"")
}

func TestCommandBuilderAuditsInvestigationDocument(testInstance *testing.T) {
	builder := audit.CommandBuilder{}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	command.SetArgs([]string{poolingFixturePathConstant})

	outputBuffer := &strings.Builder{}
	command.SetOut(outputBuffer)
	command.SetErr(&strings.Builder{})

	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, poolingFixtureCSVReportConstant, outputBuffer.String())
}

func TestCommandBuilderWrapsAuditFailures(testInstance *testing.T) {
	builder := audit.CommandBuilder{Loader: &investigationLoaderStub{}}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	command.SetArgs([]string{testInputPathConstant})
	command.SetOut(&strings.Builder{})
	command.SetErr(&strings.Builder{})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.ErrorIs(testInstance, executionError, errDocumentUnreadable)
	require.Equal(testInstance, "pooling audit failed: /tmp/i_pooled.json: document unreadable", executionError.Error())
}
