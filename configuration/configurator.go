// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package configuration

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	ConfigName     = "reward-engine"
	ConfigType     = "yaml"
	ConfigFilePath = ConfigName + "." + ConfigType
)

func Load() *Configuration {
	log := logrus.New()
	printWorkingDir(log)
	actual := load(log)
	printConfig(log, actual)
	return actual
}

func load(log *logrus.Logger) *Configuration {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("reward")

	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	v.AddConfigPath(".")
	v.AddConfigPath(".artifacts")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warnf("config file not found (file=%v). Default configuration is used", ConfigFilePath)
		} else {
			log.Error(errors.Wrapf(err, "failed to load config. Default configuration is used"))
		}
		return Default()
	}

	actual := &Configuration{}
	err := v.Unmarshal(actual)
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to unmarshal config file into configuration structure. Default configuration is used"))
		return Default()
	}

	return actual
}

func printWorkingDir(log *logrus.Logger) {
	wd, _ := os.Getwd()
	log.Infof("Working dir: %s", wd)
}

func printConfig(log *logrus.Logger, c *Configuration) {
	cc := cleanSecrets(c)
	out, err := yaml.Marshal(cc)
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to marshal configuration structure"))
		return
	}
	log.Infof("Loaded configuration: \n %s \n", string(out))
}

func cleanSecrets(c *Configuration) *Configuration {
	cleaned := *c
	re := regexp.MustCompile(`^(?P<start>.*)(://)(.*):(.*)@(?P<end>.*)$`)
	cleaned.DB.URL = re.ReplaceAllString(c.DB.URL, "${start}${2}<masked>@${end}")
	return &cleaned
}
