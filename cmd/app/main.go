package main

import (
	"github.com/johnziss9/SceneStack-sub000/internal/app"
	"github.com/johnziss9/SceneStack-sub000/internal/config"
)

func main() {
	app.Go(config.Load())
}
