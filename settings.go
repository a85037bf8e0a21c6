package rxgo

import (
	"github.com/spf13/viper"
)

type Config interface {
	Get(string) interface{}
	GetBool(string) bool
	GetInt(string) int
	GetString(string) string

	IsSet(string) bool

	GetDefault(string, interface{}) interface{}
	GetBoolDefault(string, bool) bool
	GetIntDefault(string, int) int
	GetStringDefault(string, string) string
}

func config() Config {
	return &viperWrapper{
		viper.GetViper(),
	}
}

type viperWrapper struct {
	*viper.Viper
}

func (w *viperWrapper) GetDefault(key string, v interface{}) interface{} {
	if w.IsSet(key) {
		return w.Get(key)
	}
	return v
}

func (w *viperWrapper) GetBoolDefault(key string, v bool) bool {
	if w.IsSet(key) {
		return w.GetBool(key)
	}
	return v
}

func (w *viperWrapper) GetIntDefault(key string, v int) int {
	if w.IsSet(key) {
		return w.GetInt(key)
	}
	return v
}

func (w *viperWrapper) GetStringDefault(key string, v string) string {
	if w.IsSet(key) {
		return w.GetString(key)
	}
	return v
}
