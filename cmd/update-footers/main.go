// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"

	"go.astrophena.name/footers/cli"
	"go.astrophena.name/footers/footer"
)

func main() { cli.Main(&app{cfg: footer.Default()}) }

type app struct {
	cfg     footer.Config
	summary *footer.Summary
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	s, err := footer.Run(ctx, a.cfg, env.Stdout)
	if err != nil {
		return err
	}
	a.summary = s
	return nil
}
