package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/workflow"
)

// DescribeCmd runs one generation cycle without the TUI
type DescribeCmd struct {
	Image  string `arg:"" help:"Image file to describe" type:"path"`
	Format string `help:"Output format: text, json or yaml" enum:"text,json,yaml" default:"text"`
}

// describeResult is what describe prints
type describeResult struct {
	Description string   `json:"description" yaml:"description"`
	File        string   `json:"file" yaml:"file"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Run executes the describe command
func (d *DescribeCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	file, err := cli.Container.Loader.Load(d.Image)
	if err != nil {
		return err
	}

	generator, err := cli.Container.GenerationService(ctx)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}

	wf := cli.Container.NewWorkflow(ctx, generator, cli.Container.LocalClipboard())
	result, err := describe(ctx, wf, file)
	if err != nil {
		return err
	}

	return writeDescribeResult(os.Stdout, d.Format, result)
}

// describe loads file into wf and runs the describe-then-tag cycle to
// completion
func describe(ctx context.Context, wf *workflow.Workflow, file domain.File) (describeResult, error) {
	if !wf.LoadImage(file) {
		return describeResult{}, fmt.Errorf("%s: %w", file.Name, domain.ErrNotAnImage)
	}

	logging.Logger.Info("Describing image", "file", file.Name)
	if err := workflow.Run(ctx, wf, wf.Generate()); err != nil {
		return describeResult{}, fmt.Errorf("generation interrupted: %w", err)
	}

	session := wf.Session()
	if domain.IsSentinelDescription(session.Description) || session.Description == domain.DescriptionError {
		return describeResult{}, errors.New(session.Description)
	}

	return describeResult{
		Description: session.Description,
		File:        file.Name,
		Tags:        session.Tags,
	}, nil
}

func writeDescribeResult(w io.Writer, format string, result describeResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintf(w, "%s\n\nTags: %s\n", result.Description, strings.Join(result.Tags, ", "))
		return err
	}
}
