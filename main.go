// Copyright (c) 2022 The rcproxy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"): you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"syscall"

	"github.com/gin-gonic/gin"

	"respd/config"
	"respd/internal/server"
	"respd/internal/store"
	"respd/pkg/logging"
	"respd/web"
)

var (
	configPath      = flag.String("p", "conf", "Config file path")
	basicConfigFile = flag.String("c", "respd.yaml", "Basic config filename")
	version         = flag.Bool("v", false, "Show version")
	help            = flag.Bool("h", false, "Show usage info")
)

var (
	CommitSHA string
	Tag       string
	BuildTime string
)

func init() {
	if len(Tag) < 1 {
		Tag = "unknown"
	}
	if len(CommitSHA) < 1 {
		CommitSHA = "unknown"
	}
	if len(BuildTime) < 1 {
		BuildTime = "unknown"
	}
}

const banner string = `
___________________________________________  ___  __
respd - a RESP key/value server
___________________________________________  ___  __
`

func parseCli() {
	flag.Parse()
	if *version {
		fmt.Printf("version: %s\ncommit: %s\ntime: %s\n", Tag, CommitSHA, BuildTime)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
}

func main() {
	parseCli()

	cfg, err := config.LoadConfig(path.Join(*configPath, *basicConfigFile))
	if err != nil {
		logging.Errorf("parse config file err:%v", err)
		return
	}

	// Initialization Logger
	if err = logging.InitializeLogger(
		logging.WithPath(cfg.LogPath),
		logging.WithExpireDay(cfg.LogExpireDay),
		logging.WithLogLevel(cfg.LogLevel),
	); err != nil {
		logging.Errorf("failed to initialize logger, err: %s", err)
		return
	}

	if err = config.WatchLogLevel(*configPath, *basicConfigFile); err != nil {
		logging.Errorf("failed to watch config file for hot-reload, err: %s", err)
	}

	fmt.Print(banner)
	fmt.Printf("respd version: %s\n", Tag)
	fmt.Printf("respd started with addr: %s, pid: %d\n", cfg.Addr, syscall.Getpid())
	logging.Infof("respd started with addr: %s, pid: %d, version: %s", cfg.Addr, syscall.Getpid(), Tag)

	if cfg.WebPort > 0 {
		// Initialization http server
		addr := fmt.Sprintf(":%d", cfg.WebPort)
		gin.SetMode(gin.ReleaseMode)
		ginSrv := gin.New()
		web.Init(ginSrv)
		httpSrv := &http.Server{Handler: ginSrv, Addr: addr}
		go func() {
			if err := httpSrv.ListenAndServe(); err != nil {
				logging.Errorf("failed to start http server, err: %s", err)
			}
		}()
	}

	st := store.New()
	srv := server.New(cfg.Addr, st)
	if err = srv.ListenAndServe(); err != nil {
		logging.Errorf("respd run failed: %s", err)
	}

	logging.Infof("respd shutdown, pid: %d, addr: %s", syscall.Getpid(), cfg.Addr)
}
