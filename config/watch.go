// Copyright (c) 2022 The rcproxy Authors
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

package config

import (
	"path"

	"github.com/fsnotify/fsnotify"

	"respd/pkg/logging"
)

// WatchLogLevel re-reads fileName on write/rename and applies any log-level
// change without restarting the process. It only reacts to the log level;
// every other field requires a restart.
func WatchLogLevel(dir, fileName string) error {
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Errorf("err=%s", err)
		return err
	}
	if err = watch.Add(dir); err != nil {
		logging.Errorf("err=%s", err)
		return err
	}

	full := path.Join(dir, fileName)
	go func() {
		for {
			select {
			case ev := <-watch.Events:
				if ev.Name != full {
					continue
				}
				switch {
				case ev.Op&fsnotify.Write == fsnotify.Write:
					fallthrough
				case ev.Op&fsnotify.Rename == fsnotify.Rename:
					cfg, err := LoadConfig(full)
					if err != nil {
						logging.Errorf("reload config err: %s", err)
						continue
					}
					logging.SetLevel(cfg.LogLevel)
				}
			case err := <-watch.Errors:
				logging.Errorf("err=%s", err)
				return
			}
		}
	}()
	return nil
}
