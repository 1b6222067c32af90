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

package ls

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
	class    string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "ls <file>",
		Short: "List the objects in an RPSL file or whois response",
		Long: `List one line per object: index, object class, primary key and attribute
count. The object class is the name of the first attribute and the primary key
is its value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			return runE(c)
		},
	}

	cmd.Flags().StringVarP(&c.class, "class", "c", "", "only list objects of this class")

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

	classColor := color.New(color.FgCyan)
	for i, o := range objects {
		class := o.Attribute(0).Name()
		if c.class != "" && c.class != class {
			continue
		}
		key := "-"
		if content := o.Attribute(0).Value().WithContent(); len(content) > 0 {
			key = content[0]
		}
		fmt.Printf("%d\t%s\t%s\t%d\n", i, classColor.Sprint(class), key, o.Len())
	}
	return nil
}
