package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/spf13/viper"
)

type config struct {
	AppEnv   string
	AppName  string
	Database struct {
		Driver                 string
		DSN                    string
		User                   string
		Password               string
		Addr                   string
		DBName                 string
		Port                   string
		SSLMode                string
		MaxConns               int32
		MinConns               int32
		ConnMaxLifetimeSeconds int
	}
	Server struct {
		Address                string
		ShutdownTimeoutSeconds int
	}
	Log struct {
		Level      string
		Format     string
		Output     string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
}

// C is config variable
var C config

// Application Environment name
const (
	Development = "development"
	Test        = "test"
	E2E         = "e2e"
	Production  = "production"
)

// ReadConfigOption is a config option
type ReadConfigOption struct {
	AppEnv string
}

// ReadConfig configures config file
func ReadConfig(option ReadConfigOption) {
	Config := &C

	e := appEnv(option)

	switch e {
	case Test:
		setTest()
	case E2E:
		setE2E()
	case Development:
		setDev()
	default:
		setProd()
	}

	viper.SetConfigType("yml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println(err)
		log.Fatalln(err)
	}

	if err := viper.Unmarshal(&Config); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	C.AppEnv = e

	if e != Production {
		spew.Dump(C)
	}
}

func appEnv(option ReadConfigOption) string {
	if option.AppEnv != "" {
		return option.AppEnv
	}
	if os.Getenv("APP_ENV") != "" {
		return os.Getenv("APP_ENV")
	}

	return Development
}

func rootDir() string {
	_, b, _, _ := runtime.Caller(0)
	d := path.Join(path.Dir(b))
	return filepath.Dir(d)
}

func setDev() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config")
}

func setTest() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.test")
}

func setE2E() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.e2e")
}

func setProd() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.production")
}
