// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/matrixorigin/tabular/pkg/config"
	"github.com/matrixorigin/tabular/pkg/logutil"
)

var (
	configFile = flag.String("cfg", "", "toml configuration used to start tabular-bench")
	version    = flag.Bool("version", false, "print version information")
)

// Version is overridden by the linker on release builds.
var Version = "unknown"

var setupLoggerOnce sync.Once

func main() {
	flag.Parse()
	maybePrintVersion()

	cfg := config.NewDefaultConfig()
	if *configFile != "" {
		if err := config.LoadConfigFromFile(*configFile, cfg); err != nil {
			panic(fmt.Sprintf("failed to parse config from %s, error: %s", *configFile, err.Error()))
		}
	}
	setupLogger(cfg)

	if *cpuProfilePathFlag != "" {
		stop := startCPUProfile()
		defer stop()
	}
	defer writeHeapProfile()

	seed := cfg.Bench.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := runBench(cfg, seed); err != nil {
		panic(err)
	}
}

func setupLogger(cfg *config.Config) {
	setupLoggerOnce.Do(func() {
		logutil.SetupLogger(&cfg.Log)
	})
}

func maybePrintVersion() {
	if !*version {
		return
	}
	fmt.Println("tabular-bench version:", Version)
	os.Exit(0)
}
