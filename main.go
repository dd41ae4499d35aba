package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/pontaoski/cflat/config"
	"github.com/pontaoski/cflat/feedback"
	"github.com/pontaoski/cflat/lexer"
	"github.com/pontaoski/cflat/parser"
	"github.com/pontaoski/cflat/types"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func readSource(path string) (config.Module, string, error) {
	if path == "" {
		return config.Module{}, "", fmt.Errorf("no file given")
	}

	mod, err := config.Load(filepath.Dir(path))
	if err != nil {
		return config.Module{}, "", err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return config.Module{}, "", fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return mod, string(data), nil
}

func override(c *cli.Context, flag string, value bool) bool {
	if c.IsSet(flag) {
		return c.Bool(flag)
	}
	return value
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cflat: ")

	app := &cli.App{
		Name:  "cflat",
		Usage: "cflat front end",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			if exit, ok := err.(cli.ExitCoder); ok {
				os.Exit(exit.ExitCode())
			}
			log.Fatalf("error with cflat: %s", err)
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "init a directory",
				Action: func(c *cli.Context) error {
					return config.Init(".", c.Args().First())
				},
			},
			{
				Name:  "tokens",
				Usage: "print the token stream of a file",
				Action: func(c *cli.Context) error {
					_, src, err := readSource(c.Args().First())
					if err != nil {
						return err
					}

					s := lexer.NewScanner(src, nil)
					for {
						tok, span := s.Next()
						fmt.Printf("%s %s\n", span, tok.Debug())
						if tok.Kind == types.EOF {
							return nil
						}
					}
				},
			},
			{
				Name:  "parse",
				Usage: "parse a file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "debug-token",
						Usage: "trace every token to stderr",
					},
					&cli.BoolFlag{
						Name:  "debug-ast",
						Usage: "dump the parsed AST to stderr",
					},
					&cli.BoolFlag{
						Name:  "stack",
						Usage: "print syntax errors with a stack trace",
					},
					&cli.BoolFlag{
						Name: "no-color",
					},
				},
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					mod, src, err := readSource(path)
					if err != nil {
						return err
					}

					exprs, err := parser.Parse(
						src,
						override(c, "debug-token", mod.Debug.Tokens),
						override(c, "debug-ast", mod.Debug.AST),
					)
					if err != nil {
						if c.Bool("stack") {
							tracerr.PrintSourceColor(err)
							return cli.Exit("", 1)
						}

						msg, ok := feedback.FromError(feedback.NewFile(path, src), err)
						if !ok {
							return err
						}
						fmt.Fprintln(os.Stderr, msg.Make(mod.UseColor() && !c.Bool("no-color")))
						return cli.Exit("", 1)
					}

					for _, expr := range exprs {
						fmt.Println(expr)
					}
					return nil
				},
			},
		},
	}

	app.Run(os.Args)
}
