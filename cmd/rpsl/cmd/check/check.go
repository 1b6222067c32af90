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

package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/irrkit/gorpsl"
	"github.com/irrkit/gorpsl/internal/segment"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type conf struct {
	fileName string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "check <file>",
		Short: "Validate the objects in an RPSL file one by one",
		Long: `Validate every object in a file. Unlike parsing the whole file at once,
check splits the input on blank line runs first and parses each chunk
separately, so one malformed object does not hide the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			return runE(c)
		},
	}

	return cmd
}

func runE(c *conf) error {
	data, err := os.ReadFile(c.fileName)
	if err != nil {
		return err
	}

	var objects, failed int
	for _, seg := range segment.Split(string(data)) {
		_, err := gorpsl.ParseObject(seg.Text)
		if err != nil {
			// A chunk of nothing but comment lines is not an object.
			if errors.Is(err, gorpsl.ErrEmptyObject) {
				continue
			}
			failed++
			log.WithField("line", seg.Line).Errorf("%v", err)
			continue
		}
		objects++
	}

	log.Infof("checked %d objects, %d failed", objects+failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d malformed objects", failed)
	}
	return nil
}
