package integrationtest

import (
	"sync"

	"github.com/johnziss9/SceneStack-sub000/internal/config"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

func getConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.Load()
	})
	return cfg
}
