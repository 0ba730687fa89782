package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formdesigner"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/export"
	"github.com/goliatone/go-formdesigner/pkg/render"
	"github.com/goliatone/go-formdesigner/pkg/renderers/html"
	"github.com/goliatone/go-formdesigner/pkg/renderers/tui"
)

func main() {
	input := flag.String("input", "", "form content file (.json, .yaml or .yml)")
	mode := flag.String("mode", "preview", "designer, preview, submit, properties, tui, openapi, schema or content-schema")
	output := flag.String("output", "", "output file (stdout if empty)")
	formID := flag.String("form-id", "", "form id (defaults to the input file name)")
	name := flag.String("name", "", "form name")
	selected := flag.String("selected", "", "element id selected in designer and properties modes")
	locale := flag.String("locale", "", "locale for the page chrome")
	pretty := flag.Bool("pretty", false, "print tui results as label: value lines")
	watchInput := flag.Bool("watch", false, "render again whenever the input file changes")
	flag.Parse()

	if strings.TrimSpace(*input) == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *watchInput && *mode == "tui" {
		fmt.Fprintln(os.Stderr, "-watch cannot be combined with -mode tui")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := render.RenderOptions{SelectedID: *selected, Locale: *locale}
	emit := func() error {
		elements, err := formdesigner.ReadContent(*input)
		if err != nil {
			return fmt.Errorf("load form: %w", err)
		}
		out, err := run(ctx, formFor(*input, *formID, *name, elements), *mode, opts, *pretty)
		if err != nil {
			return err
		}
		return writeOutput(*output, out)
	}

	err := emit()
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Aborted")
		os.Exit(130)
	}
	if err != nil && !*watchInput {
		log.Fatalf("Failed to render form: %v", err)
	}
	if !*watchInput {
		return
	}
	if err != nil {
		log.Printf("Failed to render form: %v", err)
	}
	log.Printf("Watching %s for changes", *input)
	if err := watch(ctx, *input, func() {
		if err := emit(); err != nil {
			log.Printf("Failed to render form: %v", err)
		}
	}); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

func formFor(input, formID, name string, elements []element.Instance) render.Form {
	id := formID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	title := name
	if title == "" {
		title = id
	}
	return render.Form{ID: id, Name: title, Elements: elements}
}

func writeOutput(path string, out []byte) error {
	if path == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Form written to %s\n", path)
	return nil
}

func run(ctx context.Context, form render.Form, mode string, opts render.RenderOptions, pretty bool) ([]byte, error) {
	switch mode {
	case "tui":
		format := tui.OutputFormatJSON
		if pretty {
			format = tui.OutputFormatPrettyText
		}
		renderer, err := tui.New(tui.WithOutput(os.Stderr), tui.WithOutputFormat(format))
		if err != nil {
			return nil, err
		}
		opts.Mode = render.ModeSubmit
		return renderer.Render(ctx, form, opts)
	case "openapi":
		doc, err := export.OpenAPI(ctx, exportForm(form), export.OpenAPIOptions{})
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(doc, "", "  ")
	case "schema":
		return json.MarshalIndent(export.SubmissionSchema(form.Name, form.Elements), "", "  ")
	case "content-schema":
		return json.MarshalIndent(export.ContentSchema(), "", "  ")
	}

	renderMode, err := render.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	opts.Mode = renderMode
	return renderer.Render(ctx, form, opts)
}

func exportForm(form render.Form) export.Form {
	return export.Form{
		ID:          form.ID,
		Name:        form.Name,
		Description: form.Description,
		Elements:    element.CloneList(form.Elements),
	}
}
