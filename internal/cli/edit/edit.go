// Package edit holds the edit command, which replays a scripted sequence of edits
//
// e.g., maskfield edit --preset phone --script steps.yaml
package edit

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/cli/styles"
	"github.com/thenoetrevino/maskfield/internal/mask"
)

// StepResult is the engine state after one step
type StepResult struct {
	Index   int    `json:"index"`
	Op      string `json:"op"`
	Display string `json:"display"`
	Logical string `json:"logical"`
	Caret   int    `json:"caret"`
}

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replay a script of edits against a masked field",
		Long: `Replay a YAML script of edits against a masked field and print the field after each step.
Positions are display positions counted in characters, literals included.

Script format:
  placeholder: "_"
  text: "555"
  steps:
    - op: insert
      at: 5
      text: "1234567"
    - op: delete
      start: 0
      end: 4
    - op: select
      start: 1
      end: 3
    - op: type
      text: "99"
    - op: mask
      mask: "###-###-####"

Examples:
  maskfield edit --preset phone --script steps.yaml
  maskfield edit --mask "##:##" --script steps.yaml --json
`,
		RunE: runEdit,
	}

	cmd.Flags().String("mask", "", "Mask pattern")
	cmd.Flags().String("preset", "", "Named preset to take the mask from")
	cmd.Flags().String("placeholder", "", "Character shown in empty slots (overrides the script)")
	cmd.Flags().String("script", "", "Path to the YAML edit script (required)")
	if err := cmd.MarkFlagRequired("script"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	maskFlag, _ := cmd.Flags().GetString("mask")
	presetFlag, _ := cmd.Flags().GetString("preset")
	placeholderFlag, _ := cmd.Flags().GetString("placeholder")
	scriptPath, _ := cmd.Flags().GetString("script")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	script, err := LoadScript(scriptPath)
	if err != nil {
		if fmtErr := formatter.Error("SCRIPT_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitDataErr, err)
	}

	cfg, err := cli.LoadConfig(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, "CONFIG_ERROR", err)
	}

	if placeholderFlag == "" {
		placeholderFlag = script.Placeholder
	}
	pattern, placeholder, err := cli.ResolveMask(cfg, maskFlag, presetFlag, placeholderFlag)
	if errors.Is(err, cli.ErrMaskSource) {
		return cli.UsageError(formatter, err.Error())
	}
	if err != nil {
		return cli.Fail(formatter, "MASK_ERROR", err)
	}

	engine, err := mask.New(pattern,
		mask.WithPlaceholder(placeholder),
		mask.WithText(script.Text),
		mask.WithLogger(slog.Default()),
	)
	if err != nil {
		return cli.Fail(formatter, "MALFORMED_MASK", err)
	}

	results, err := Replay(engine, script.Steps)
	if err != nil {
		code, exitCode := "STEP_FAILED", cli.Classify(err)
		if errors.Is(err, ErrUnknownOp) {
			code, exitCode = "SCRIPT_ERROR", cli.ExitDataErr
		}
		if fmtErr := reportFailure(formatter, code, err, results); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(exitCode, err)
	}

	if jsonOutput {
		return formatter.Success(map[string]any{
			"steps":    results,
			"display":  engine.DisplayText(),
			"logical":  engine.LogicalText(),
			"complete": engine.IsComplete(),
		})
	}

	printSteps(formatter, results)
	formatter.Println(styles.Field("Final", styles.RenderSlots(engine.Slots())))
	return nil
}

// StepError reports which step of a script failed
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Replay applies steps in order and stops at the first failure.
// The results of the steps that succeeded are returned either way.
func Replay(e *mask.Engine, steps []Step) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for i, step := range steps {
		res, err := step.Apply(e)
		if err != nil {
			return results, &StepError{Index: i + 1, Op: step.Op, Err: err}
		}
		results = append(results, StepResult{
			Index:   i + 1,
			Op:      step.Op,
			Display: res.Display,
			Logical: res.Logical,
			Caret:   res.Caret,
		})
	}
	return results, nil
}

// reportFailure prints the steps that ran before the failing one, then the error.
// In JSON mode both go into a single envelope.
func reportFailure(formatter *cli.OutputFormatter, code string, err error, results []StepResult) error {
	if formatter.JSON {
		errData := map[string]any{
			"code":    code,
			"message": err.Error(),
		}
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			errData["step"] = stepErr.Index
		}
		return formatter.Encode(map[string]any{
			"success": false,
			"error":   errData,
			"steps":   results,
		})
	}

	printSteps(formatter, results)
	return formatter.Error(code, err.Error())
}

func printSteps(formatter *cli.OutputFormatter, results []StepResult) {
	for _, r := range results {
		formatter.Printf("%3d %-11s %s  %s\n",
			r.Index,
			r.Op,
			r.Display,
			styles.SubtitleStyle.Render(fmt.Sprintf("logical=%q caret=%d", r.Logical, r.Caret)),
		)
	}
}
