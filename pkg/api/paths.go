package api

import (
	"os"
	"path/filepath"
)

const (
	ApiVersion      = "1.0"
	ApiVersionMajor = "1"
	defaultAppName  = "domain-sync"
)

func rootPrefix() string {
	pathPrefix, present := os.LookupEnv("PATH_PREFIX")
	if !present {
		pathPrefix = "api"
	}

	appName, present := os.LookupEnv("APP_NAME")
	if !present {
		appName = defaultAppName
	}
	return filepath.Join("/", pathPrefix, appName)
}

func FullRootPath() string {
	return filepath.Join(rootPrefix(), "v"+ApiVersion)
}

func MajorRootPath() string {
	return filepath.Join(rootPrefix(), "v"+ApiVersionMajor)
}
