package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

var (
	validatePackage string
	validateSchema  string
	validateJSON    bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [payload-file]",
	Short: "Validate a JSON payload against a schema",
	Long: `Validate a JSON payload against one of the stored JSON Schemas.

The payload is read from the given file, or from stdin when the file is
omitted or "-". By default the payload is checked against the poker
session statistics schema; use --package and --schema to pick another
document from the schema directory.

The command exits non-zero when the payload does not conform, printing
one line per violation.

Examples:
  contentgen validate session.json
  cat session.json | contentgen validate
  contentgen validate payload.json --package poker --schema session-stats.schema.v1.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validationService == nil {
		return errors.New("validation service not configured")
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	data, err := readJSONInput(cmd, path)
	if err != nil {
		return err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parsing payload: %w", err)
	}

	result, err := validationService.ValidatePayload(validatePackage, validateSchema, payload)
	if err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	if validateJSON {
		if err := printJSON(cmd, result); err != nil {
			return err
		}
		if !result.OK {
			return fmt.Errorf("payload failed validation with %d violation(s)", len(result.Errors))
		}
		return nil
	}

	if !result.OK {
		cmd.Println("Payload failed validation:")
		for _, violation := range result.Errors {
			cmd.Printf("  - %s\n", violation)
		}
		return fmt.Errorf("payload failed validation with %d violation(s)", len(result.Errors))
	}

	cmd.Println("Payload is valid.")

	return nil
}

func init() {
	validateCmd.Flags().StringVar(&validatePackage, "package", driven.SchemaPackagePoker, "schema package to validate against")
	validateCmd.Flags().StringVar(&validateSchema, "schema", driven.SchemaSessionStats, "schema file name within the package")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the validation result as JSON")
	rootCmd.AddCommand(validateCmd)
}
