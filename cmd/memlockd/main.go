// Copyright 2023 Intel Corporation. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
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
	"time"

	"github.com/intel/memlockd/pkg/log"
	"github.com/intel/memlockd/pkg/memlock"
	"github.com/intel/memlockd/pkg/metrics"
	"github.com/intel/memlockd/pkg/pidfile"
	"github.com/intel/memlockd/pkg/sysmem"
	"github.com/intel/memlockd/pkg/version"
)

// defaultConfigPath is the configuration read without -config.
const defaultConfigPath = "/etc/memlockd/memlockd.yaml"

// idleInterval is the sleep period of the post-setup idle loop.
const idleInterval = 30 * time.Second

func exit(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, fmt.Sprintf("memlockd: "+format+"\n", a...))
	os.Exit(1)
}

func main() {
	optConfig := flag.String("config", defaultConfigPath,
		"-config=PATH configuration file to use")
	optUsage := flag.Bool("usage", false,
		"print memory usage for the configuration and exit; this pins the files to get accurate usage")
	optPidFile := flag.String("pid-file", "",
		"-pid-file=PATH PID file to write, instead of the built-in default")
	optMetrics := flag.String("metrics-address", "",
		"-metrics-address=ADDR serve prometheus metrics on ADDR, empty disables")
	optDebug := flag.Bool("debug", false,
		"enable debug logging")
	optVersion := flag.Bool("version", false,
		"print version information and exit")

	flag.Parse()

	if *optVersion {
		version.PrintVersionInfo()
		return
	}

	if *optDebug {
		log.EnableDebug(true)
	}

	cfg, err := memlock.ReadConfig(*optConfig)
	if err != nil {
		exit("%v", err)
	}

	totalMemory, err := sysmem.TotalMemory()
	if err != nil {
		exit("%v", err)
	}

	registry, err := memlock.Setup(cfg, totalMemory)
	if err != nil {
		exit("%v", err)
	}

	if *optUsage {
		registry.WriteUsage(os.Stdout)
		log.Flush()
		return
	}

	if *optPidFile != "" {
		pidfile.SetPath(*optPidFile)
	}
	if pid, err := pidfile.OwnerPid(); err == nil && pid > 0 && pid != os.Getpid() {
		exit("already running as PID %d", pid)
	}
	pidfile.Remove()
	if err := pidfile.Write(); err != nil {
		exit("%v", err)
	}

	if *optMetrics != "" {
		if err := metrics.Serve(*optMetrics, registry); err != nil {
			exit("%v", err)
		}
	}

	// The pinned mappings stay resident only as long as this process
	// lives. There is nothing left to do but stay alive.
	for {
		time.Sleep(idleInterval)
	}
}
