package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dgallion1/syllabus/internal/config"
	"github.com/dgallion1/syllabus/internal/outline"
	"github.com/dgallion1/syllabus/internal/parser"
	"github.com/dgallion1/syllabus/internal/report"
)

var errNotFound = errors.New("section not found")

// loaded is an outline plus the title to draw it under.
type loaded struct {
	outline *outline.Outline
	title   string
}

func newApp(cfg config.Config, log *slog.Logger, out io.Writer) *cli.App {
	load := func(c *cli.Context) (loaded, error) {
		return loadOutline(c, log)
	}

	return &cli.App{
		Name:   "syllabus",
		Usage:  "inspect the numbered table of contents of a curriculum",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Value:   cfg.Source,
				Usage:   "outline document (.md, .html, .docx, or .txt with \"# \" comment lines); empty uses the built-in curriculum",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   cfg.Format,
				Usage:   "output format: tree, yaml or json",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Value: cfg.Strict,
				Usage: "validate the outline before building it",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Value: cfg.MaxDepth,
				Usage: "deepest allowed entry level when validating; negative disables the limit",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "tree",
				Usage: "draw chapters and sections as a tree",
				Action: func(c *cli.Context) error {
					l, err := load(c)
					if err != nil {
						return err
					}
					_, err = fmt.Fprint(c.App.Writer, report.Tree(l.title, l.outline.Chapters()))
					return err
				},
			},
			{
				Name:  "list",
				Usage: "list every entry, hidden ones included",
				Action: func(c *cli.Context) error {
					l, err := load(c)
					if err != nil {
						return err
					}
					return writeSections(c, l.outline.Sections())
				},
			},
			{
				Name:  "chapters",
				Usage: "show entries grouped by chapter",
				Action: func(c *cli.Context) error {
					l, err := load(c)
					if err != nil {
						return err
					}
					format, err := report.ParseFormat(c.String("format"))
					if err != nil {
						return err
					}
					if format == report.FormatTree {
						_, err = fmt.Fprint(c.App.Writer, report.Tree(l.title, l.outline.Chapters()))
						return err
					}
					return report.Encode(c.App.Writer, format, l.outline.Chapters())
				},
			},
			navCommand("show", "show the section at a path", 0, load),
			navCommand("next", "show the section after a path", 1, load),
			navCommand("prev", "show the section before a path", -1, load),
			{
				Name:  "check",
				Usage: "validate the outline and report its size",
				Action: func(c *cli.Context) error {
					descs, _, err := readDescriptors(c.String("source"))
					if err != nil {
						return err
					}
					if err := outline.Validate(descs, c.Int("max-depth")); err != nil {
						return err
					}
					o := outline.Build(descs)
					_, err = fmt.Fprintf(c.App.Writer, "ok: %d entries in %d chapters\n", o.Len(), len(o.Chapters()))
					return err
				},
			},
		},
	}
}

// navCommand builds a command that looks up the section offset positions
// away from the path given as its argument.
func navCommand(name, usage string, offset int, load func(*cli.Context) (loaded, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("%s: missing section path", name)
			}
			l, err := load(c)
			if err != nil {
				return err
			}
			s, ok := l.outline.Lookup(path, offset)
			if !ok {
				return fmt.Errorf("%s %q: %w", name, path, errNotFound)
			}
			return writeSections(c, []outline.Section{s})
		},
	}
}

func writeSections(c *cli.Context, sections []outline.Section) error {
	format, err := report.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}
	if format != report.FormatTree {
		if len(sections) == 1 {
			return report.Encode(c.App.Writer, format, sections[0])
		}
		return report.Encode(c.App.Writer, format, sections)
	}
	for _, s := range sections {
		if _, err := fmt.Fprintln(c.App.Writer, report.Line(s)); err != nil {
			return err
		}
	}
	return nil
}

// loadOutline returns the built-in curriculum or the outline read from
// --source, validating it first when --strict is set.
func loadOutline(c *cli.Context, log *slog.Logger) (loaded, error) {
	source := c.String("source")
	if source == "" {
		o := outline.Default()
		log.Debug("using built-in curriculum", "entries", o.Len())
		return loaded{outline: o, title: outline.RootTitle}, nil
	}

	descs, title, err := readDescriptors(source)
	if err != nil {
		return loaded{}, err
	}

	if c.Bool("strict") {
		if err := outline.Validate(descs, c.Int("max-depth")); err != nil {
			log.Warn("outline failed validation", "source", source, "error", err)
			return loaded{}, fmt.Errorf("validate %s: %w", source, err)
		}
	}

	o := outline.Build(descs)
	log.Info("outline loaded", "source", source, "entries", o.Len(), "chapters", len(o.Chapters()))
	return loaded{outline: o, title: title}, nil
}

// readDescriptors returns the descriptors of an outline document, or the
// built-in curriculum when source is empty.
func readDescriptors(source string) ([]outline.Descriptor, string, error) {
	if source == "" {
		return outline.Curriculum(), outline.RootTitle, nil
	}

	p, err := parser.ForFile(source)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, "", fmt.Errorf("open outline: %w", err)
	}
	defer f.Close()

	tree, err := p.Parse(f, source)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", source, err)
	}

	return outline.FromTree(tree), tree.Title, nil
}
