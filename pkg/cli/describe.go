/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
	"github.com/aquaveo/xmsconan/pkg/library"
	"github.com/aquaveo/xmsconan/pkg/serializer"
)

func describeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "describe",
		EnableShellCompletion: true,
		Usage:                 "Print the resolved library description",
		ArgsUsage:             "CONFIG",
		Description: `Load and validate a library description, then print the resolved form.

The output includes every default the loader filled in, so it shows the
description exactly as the generator will see it. A description that
fails validation prints the validation error instead.

# Examples

Print the resolved description as yaml:
  xmsconan describe xmscore.toml

Write it to a file as json:
  xmsconan describe -t json -o xmscore.json xmscore.toml

Summarize it as a table:
  xmsconan describe -t table xmscore.toml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if cmd.Args().Len() != 1 {
				return xerrors.New(xerrors.ErrCodeInvalidRequest,
					"exactly one library config path is required")
			}

			desc, err := library.Load(cmd.Args().First())
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, desc)
		},
	}
}
