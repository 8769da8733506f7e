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
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"respd/pkg/logging"
)

// Config is the server's YAML configuration, loaded once at startup and
// re-read on disk changes for the fields WatchLogLevel supports.
type Config struct {
	Addr         string `yaml:"addr"`
	WebPort      int    `yaml:"web_port"`
	LogPath      string `yaml:"log_path"`
	LogLevel     string `yaml:"log_level"`
	LogExpireDay int    `yaml:"log_expire_day"`
}

var defaults = Config{
	Addr:         "0.0.0.0:6379",
	WebPort:      6380,
	LogPath:      "log",
	LogLevel:     logging.LevelInfo,
	LogExpireDay: 7,
}

// LoadConfig reads and validates the YAML config at fileName, filling in
// defaults for anything left unset.
func LoadConfig(fileName string) (*Config, error) {
	cfg := defaults
	file, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file from %s", fileName)
	}
	if err = yaml.Unmarshal(file, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", fileName)
	}
	if err = cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config validate failed")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, ok := logging.LevelMapperRev[c.LogLevel]; !ok {
		return errors.Errorf("unknown log level %s", c.LogLevel)
	}
	if len(c.Addr) < 1 {
		return errors.Errorf("unknown listen addr")
	}
	return nil
}
