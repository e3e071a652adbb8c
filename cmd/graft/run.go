package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	gerrors "github.com/graft-dev/graft/internal/errors"
	"github.com/graft-dev/graft/pkg/dom"
	"github.com/graft-dev/graft/pkg/hydrate"
	"github.com/graft-dev/graft/pkg/reactive"
	"github.com/graft-dev/graft/pkg/rules"
)

func runCmd() *cobra.Command {
	var (
		output string
		attr   string
	)

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Hydrate a single document",
		Long: `Run one hydration pass over an HTML file and write the result.

Elements carrying the marker attribute are replaced according to the
registered rules; everything else passes through untouched.

Examples:
  graft run index.html
  graft run index.html -o out.html
  graft run index.html --attr=data-island`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(args[0], output, attr)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file (- for stdout)")
	cmd.Flags().StringVar(&attr, "attr", rules.DefaultAttr, "Marker attribute to match")

	return cmd
}

func runOnce(input, output, attr string) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return gerrors.New("G301", gerrors.CategoryCLI, "reading %s", input).Wrap(err)
	}

	doc, err := dom.ParseDocument(bytes.NewReader(raw))
	if err != nil {
		return gerrors.New("G302", gerrors.CategoryCLI, "parsing %s", input).Wrap(err)
	}

	owner := reactive.NewOwner(nil)
	defer owner.Dispose()

	h := hydrate.New()
	replace := rules.DefaultRegistry().Replacer(h, owner, attr)

	replaced := 0
	h.HydrateChildren(owner, doc, func(el *html.Node) (hydrate.Builder, bool) {
		build, ok := replace(el)
		if ok {
			replaced++
		}
		return build, ok
	})

	rendered, err := dom.OuterHTML(doc)
	if err != nil {
		return gerrors.New("G304", gerrors.CategoryCLI, "rendering %s", input).Wrap(err)
	}

	if output == "-" {
		os.Stdout.WriteString(rendered)
		return nil
	}

	if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
		return gerrors.New("G303", gerrors.CategoryCLI, "writing %s", output).Wrap(err)
	}
	success("wrote %s", output)
	info("%d element(s) replaced", replaced)

	return nil
}
