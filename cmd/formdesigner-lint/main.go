package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-formdesigner"
	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/fields"
)

const usage = `Usage: %s [-strict] paths...

Lint form content files (JSON or YAML) against the element attribute schemas.
With -strict, content that collects no values is reported as well.
`

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	strict := flag.Bool("strict", false, "report content without input elements")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(lint(os.Stderr, fields.Default(), paths, *strict))
}

// lint reports every violation in paths to w and returns the exit code.
func lint(w io.Writer, reg *fields.Registry, paths []string, strict bool) int {
	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(reg, path, strict)
		if err != nil {
			fmt.Fprintf(w, "lint %s: %v\n", path, err)
			return 1
		}
		violations = append(violations, linted...)
	}
	if len(violations) == 0 {
		return 0
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].file < violations[j].file
	})
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	return 1
}

func lintFile(reg *fields.Registry, path string, strict bool) ([]violation, error) {
	elements, err := formdesigner.ReadContent(path)
	if err != nil {
		return nil, err
	}

	var (
		result []violation
		inputs int
	)
	for i, inst := range elements {
		if inst.Type.IsInput() {
			inputs++
		}
		_, err := reg.CheckAttributes(inst.Attributes)
		if err == nil {
			continue
		}
		at := fmt.Sprintf("[%d] > %s", i, inst.ID)
		var attrErr *element.AttributeError
		if !errors.As(err, &attrErr) {
			result = append(result, violation{file: path, location: at, message: err.Error()})
			continue
		}
		for _, v := range attrErr.Violations {
			result = append(result, violation{file: path, location: at + " > " + v.Field, message: v.Message})
		}
	}
	if strict && inputs == 0 {
		result = append(result, violation{file: path, location: "content", message: "no input elements"})
	}
	return result, nil
}
