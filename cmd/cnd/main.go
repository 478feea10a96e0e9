package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kbirk/cnd/pkg/parse"
	"github.com/kbirk/cnd/pkg/schema"
)

var (
	input string
	quiet bool
)

func main() {

	flag.StringVar(&input, "input", "", "Input dir")
	flag.BoolVar(&quiet, "quiet", false, "Only report errors")

	flag.Parse()

	if input == "" {
		os.Stderr.WriteString("No `--input` argument provided, Set input dir with `--input=\"<dir>\"`\n")
		os.Exit(1)
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	s, err := parse.ParseDir(input)
	if err != nil {
		os.Stderr.WriteString(red("ERROR: ") + fmt.Sprintf("Failed to parse input: %v\n", err.Error()))
		os.Exit(1)
	}

	if quiet {
		return
	}

	os.Stdout.WriteString(green("SUCCESS: ") + fmt.Sprintf("Parsed %d node types\n", len(s.NodeTypes)))

	for prefix, uri := range s.Namespaces {
		os.Stdout.WriteString(fmt.Sprintf("%s <%s = '%s'>\n", magenta("[namespace]"), white(prefix), cyan(uri)))
	}
	for _, nt := range s.NodeTypes {
		header := white(nt.Name)
		if len(nt.Supertypes) > 0 {
			header += " > " + cyan(strings.Join(nt.Supertypes, ", "))
		}
		os.Stdout.WriteString(fmt.Sprintf("%s [%s] %s\n", blue("[nodetype]"), header, yellow(nodeTypeFlags(nt))))
		for _, prop := range nt.Properties {
			os.Stdout.WriteString(fmt.Sprintf("    %s %s (%s)\n", green("-"), white(prop.Name), cyan(prop.RequiredType.String())))
		}
		for _, child := range nt.ChildNodes {
			os.Stdout.WriteString(fmt.Sprintf("    %s %s (%s)\n", green("+"), white(child.Name), cyan(strings.Join(child.RequiredTypes, ", "))))
		}
	}
}

func nodeTypeFlags(nt *schema.NodeType) string {
	flags := []string{}
	if nt.Abstract {
		flags = append(flags, "abstract")
	}
	if nt.Mixin {
		flags = append(flags, "mixin")
	}
	if nt.Orderable {
		flags = append(flags, "orderable")
	}
	if !nt.Queryable {
		flags = append(flags, "noquery")
	}
	if nt.PrimaryItemName != "" {
		flags = append(flags, "primaryitem "+nt.PrimaryItemName)
	}
	return strings.Join(flags, " ")
}
