package config

import "os"

func IsDebug() bool {
	return os.Getenv("FLASHBOT_DEBUG") == "1"
}
