/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"antdkit/internal/config"
	"antdkit/internal/crash"
	applog "antdkit/internal/log"
	"antdkit/internal/version"
)

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "antdkit: colour ladders and rounded borders for Ant Design style controls")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  antdkit version|-v|--version                     Show version")
	_, _ = fmt.Fprintln(w, "  antdkit palette <hex|preset> [--json]            Print the 10-step ladder of a seed")
	_, _ = fmt.Fprintln(w, "  antdkit tone <hex|preset> <1-10>                 Print one ladder colour")
	_, _ = fmt.Fprintln(w, "  antdkit presets                                  List the built-in seed colours")
	_, _ = fmt.Fprintln(w, "  antdkit border --size WxH [--radius r|tl,tr,br,bl] [--thickness t|l,t,r,b]")
	_, _ = fmt.Fprintln(w, "                 [--style solid|dashed|dotted] [--color hex] [--fill hex] -o out.(png|svg)")
	_, _ = fmt.Fprintln(w, "  antdkit swatches -o out.pdf [names...]           PDF sheet of saved, preset or hex palettes")
	_, _ = fmt.Fprintln(w, "  antdkit save <name> <hex|preset>                 Store a named palette")
	_, _ = fmt.Fprintln(w, "  antdkit list                                     List stored palettes")
	_, _ = fmt.Fprintln(w, "  antdkit delete <name>                            Remove a stored palette")
	_, _ = fmt.Fprintln(w, "  antdkit lookup <hex>                             Find stored ladders containing a colour")
	_, _ = fmt.Fprintln(w, "  antdkit theme init|check <file>                  Write the default theme or validate one")
	_, _ = fmt.Fprintln(w, "  antdkit export [--preset web|print] [-o dir]     Batch export the configured theme")
	_, _ = fmt.Fprintln(w, "  antdkit pack export -o x.zip | pack install <zip> [--dir d]")
	_, _ = fmt.Fprintln(w, "  antdkit config path|show                         Show the config file location or contents")
	_, _ = fmt.Fprintln(w, "  antdkit ui [theme.json]                          Launch the gallery (build with -tags fyne)")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	// initialize structured logging from the merged config
	applog.Init(cfg.LogOptions())
	l := applog.WithComponent("cli")
	l.Debug("start", slog.Int("args", len(os.Args)))

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	info := &crash.Info{Command: cmd, Args: os.Args[1:]}
	defer crash.Recover(info)

	code := run(cfg, os.Args[1:], os.Stdout, os.Stderr)
	if code != 0 {
		os.Exit(code)
	}
}
