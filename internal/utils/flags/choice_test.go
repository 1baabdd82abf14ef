package flags

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "csv",
			choices:        []string{"csv", "json", "yaml"},
			description:    "Report format.",
			expectedOutput: "`<CSV|json|yaml>` Report format.",
		},
		{
			name:           "DefaultLastChoice",
			defaultChoice:  "yaml",
			choices:        []string{"csv", "json", "yaml"},
			description:    "Report format.",
			expectedOutput: "`<csv|json|YAML>` Report format.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "json",
			choices:        []string{"json", "csv"},
			description:    " ",
			expectedOutput: "`<JSON|csv>`",
		},
		{
			name:           "DuplicateAndBlankChoicesIgnored",
			defaultChoice:  "csv",
			choices:        []string{"csv", "CSV", "", "json"},
			description:    "Pick one.",
			expectedOutput: "`<CSV|json>` Pick one.",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedOutput, FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description))
		})
	}
}

func TestChoiceFlagParsing(t *testing.T) {
	testCases := []struct {
		name           string
		arguments      []string
		expectedChoice string
		expectError    bool
	}{
		{name: "DefaultRetained", arguments: []string{}, expectedChoice: "csv"},
		{name: "CaseInsensitive", arguments: []string{"--format", " JSON "}, expectedChoice: "json"},
		{name: "UnsupportedRejected", arguments: []string{"--format", "xml"}, expectedChoice: "csv", expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			flagSet := pflag.NewFlagSet(testCase.name, pflag.ContinueOnError)
			var selectedChoice string
			AddChoiceFlag(flagSet, &selectedChoice, "format", "CSV", []string{"csv", "json", "yaml"}, "Report format.")

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(t, parseError)
			} else {
				require.NoError(t, parseError)
			}
			require.Equal(t, testCase.expectedChoice, selectedChoice)

			registeredFlag := flagSet.Lookup("format")
			require.NotNil(t, registeredFlag)
			require.Equal(t, "choice", registeredFlag.Value.Type())
		})
	}
}
