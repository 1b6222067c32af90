/*
 * Copyright 2023 The gorpsl authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cat

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/irrkit/gorpsl"
	"github.com/spf13/cobra"
)

type conf struct {
	fileName string
	noColor  bool
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "cat <file>",
		Short: "Re-render the objects in an RPSL file as canonical RPSL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			return runE(c)
		},
	}

	cmd.Flags().BoolVar(&c.noColor, "no-color", false, "disable colored attribute names")

	return cmd
}

func runE(c *conf) error {
	data, err := os.ReadFile(c.fileName)
	if err != nil {
		return err
	}

	objects, err := gorpsl.ParseWhoisResponse(string(data))
	if err != nil {
		return err
	}

	nameColor := color.New(color.FgYellow)
	if c.noColor {
		nameColor.DisableColor()
	}
	for _, o := range objects {
		for _, a := range o.Attributes() {
			lines := a.String()
			// Colorize just the name; the rendered text starts with it.
			name := a.Name()
			fmt.Print(nameColor.Sprint(name), lines[len(name):])
		}
		fmt.Println()
	}
	return nil
}
