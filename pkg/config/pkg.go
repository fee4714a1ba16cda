package config

import "time"

var configer Configer = NewDotenvConfig("")

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

func Load() error {
	return configer.Load()
}

func GetKey(key string) string {
	return configer.GetKey(key)
}

func MustGetKey(key string) string {
	return configer.MustGetKey(key)
}

func GetKeyWithDefault(key, defaultValue string) string {
	return configer.GetKeyWithDefault(key, defaultValue)
}

func GetIntKeyWithDefault(key string, defaultValue int) int {
	return configer.GetIntKeyWithDefault(key, defaultValue)
}

func GetDurationKeyWithDefault(key string, defaultValue time.Duration) time.Duration {
	return configer.GetDurationKeyWithDefault(key, defaultValue)
}

func GetBoolKey(key string) bool {
	return configer.GetBoolKey(key)
}
