package main

import (
	"fmt"
	"os"

	"sicasm"

	cli "github.com/urfave/cli/v2"
)

func assembleFile(file, out string) error {
	if out == "" {
		out = sicasm.DefaultOutPath(file)
	}

	obj, err := sicasm.Assemble(file, out)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d bytes, wrote %s\n", obj.ProgramName, obj.TotalMemoryUsage, out)
	return nil
}

func printSymbolTable(file string) error {
	lines, err := sicasm.ReadLines(file)
	if err != nil {
		return err
	}

	st, err := sicasm.Pass1(lines)
	if err != nil {
		return err
	}

	fmt.Printf("Program   %s\n", st.ProgramName)
	fmt.Printf("Start     %06X\n", st.StartAddress)
	fmt.Printf("Length    %06X\n\n", st.TotalMemoryUsage)

	fmt.Println("Symbol  Address")
	for _, sym := range st.Symbols {
		fmt.Printf("%-6s  %06X\n", sym.Name, sym.Address)
	}

	return nil
}

func main() {
	app := &cli.App{
		Name:      "sicasm",
		Usage:     "a two-pass SIC/XE assembler",
		ArgsUsage: "file",
		Action: func(c *cli.Context) error {
			args := c.Args()
			if args.Len() < 1 {
				fmt.Println("Usage: sicasm <file>")
				return nil
			}
			return assembleFile(args.First(), c.String("out"))
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "output path for the object program (default: <file>.obj)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "assemble",
				Aliases:   []string{"a"},
				Usage:     "Assemble a SIC/XE source file into an object program",
				ArgsUsage: "file",
				Action: func(c *cli.Context) error {
					args := c.Args()
					if args.Len() < 1 {
						return cli.Exit("Insufficient arguments", 1)
					}
					return assembleFile(args.First(), c.String("out"))
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "output path for the object program (default: <file>.obj)",
					},
				},
			},
			{
				Name:      "symtab",
				Aliases:   []string{"s"},
				Usage:     "Run Pass 1 only and print the resulting symbol table",
				ArgsUsage: "file",
				Action: func(c *cli.Context) error {
					args := c.Args()
					if args.Len() < 1 {
						return cli.Exit("Insufficient arguments", 1)
					}
					return printSymbolTable(args.First())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
