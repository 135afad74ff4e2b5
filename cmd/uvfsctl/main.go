//
//  Copyright 2026 The uvfs authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Command uvfsctl is a small CLI driving a mount.Engine built from a
// mountconfig file: list directories, read files, and write files.
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/mount"
	"github.com/unionvfs/uvfs/mountconfig"
)

// options are the flags shared by every subcommand.
type options struct {
	Config string `short:"c" long:"config" default:"uvfsctl.cfg" description:"mountconfig file to load"`
}

var opts options

func (o *options) engine() (*mount.Engine, error) {
	specs, err := mountconfig.Load(o.Config)
	if err != nil {
		return nil, err
	}

	engine := mount.New()
	if err := mountconfig.Apply(engine, specs); err != nil {
		return nil, err
	}

	return engine, nil
}

type lsCommand struct{}

func (c *lsCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("ls requires exactly one path argument")
	}

	path, err := uvfs.New(args[0])
	if err != nil {
		return err
	}

	if !path.IsDir() {
		path = uvfs.Must(path.String() + "/")
	}

	engine, err := opts.engine()
	if err != nil {
		return err
	}

	entries, err := engine.List(path)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Println(e.String())
	}

	return nil
}

type catCommand struct{}

func (c *catCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("cat requires exactly one path argument")
	}

	path, err := uvfs.New(args[0])
	if err != nil {
		return err
	}

	engine, err := opts.engine()
	if err != nil {
		return err
	}

	f, err := engine.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)

	return err
}

type putCommand struct{}

func (c *putCommand) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("put requires a path and a source file argument")
	}

	path, err := uvfs.New(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	engine, err := opts.engine()
	if err != nil {
		return err
	}

	return engine.Update(path, data)
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.AddCommand("ls", "list a directory", "List the entries of a directory in the union hierarchy.", &lsCommand{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.AddCommand("cat", "print a file", "Write a file's contents to standard output.", &catCommand{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.AddCommand("put", "replace a file", "Replace a file's contents from a local source file.", &putCommand{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
