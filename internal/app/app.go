package app

import (
	"github.com/johnziss9/SceneStack-sub000/internal/config"
	http_feed "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/feed"
	http_group "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/group"
	http_init "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/init"
	http_auth_middleware "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/middleware/auth"
	http_swagger "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/swagger"
	http_watch "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/watch"
	catalog_client "github.com/johnziss9/SceneStack-sub000/internal/infra/catalog"
	infra_postgres_group "github.com/johnziss9/SceneStack-sub000/internal/infra/postgres/group"
	infra_pg_init "github.com/johnziss9/SceneStack-sub000/internal/infra/postgres/init"
	infra_postgres_movie "github.com/johnziss9/SceneStack-sub000/internal/infra/postgres/movie"
	infra_postgres_user "github.com/johnziss9/SceneStack-sub000/internal/infra/postgres/user"
	infra_postgres_watch "github.com/johnziss9/SceneStack-sub000/internal/infra/postgres/watch"
	infra_redis_init "github.com/johnziss9/SceneStack-sub000/internal/infra/redis/init"
	infra_redis_movie_cache "github.com/johnziss9/SceneStack-sub000/internal/infra/redis/movie_cache"
	infra_session_cache "github.com/johnziss9/SceneStack-sub000/internal/infra/redis/session"
	"github.com/johnziss9/SceneStack-sub000/internal/service/grouping"
	"github.com/johnziss9/SceneStack-sub000/internal/service/movie_resolver"
	session_auth "github.com/johnziss9/SceneStack-sub000/internal/service/session_auth"
	"github.com/johnziss9/SceneStack-sub000/internal/service/sharing"
	"github.com/johnziss9/SceneStack-sub000/internal/service/watch_filter"
	usecase_feed "github.com/johnziss9/SceneStack-sub000/internal/usecase/feed"
	usecase_group "github.com/johnziss9/SceneStack-sub000/internal/usecase/group"
	usecase_watch "github.com/johnziss9/SceneStack-sub000/internal/usecase/watch"
)

func Go(cfg *config.Config) {

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	watchRepository := infra_postgres_watch.New(pgConn)
	groupRepository := infra_postgres_group.New(pgConn)
	movieRepository := infra_postgres_movie.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)

	movieCache := infra_redis_movie_cache.New(redisConn, cfg.MovieCache.KeyPrefix, cfg.MovieCache.TTL)
	catalog := catalog_client.New(cfg.Catalog.APIKey, cfg.Catalog.BaseURL)
	movieResolver := movie_resolver.New(movieCache, movieRepository, catalog)

	sharingPolicy := sharing.New()
	filterCompiler := watch_filter.New()
	aggregator := grouping.New()

	watchUC := usecase_watch.New(
		watchRepository,
		groupRepository,
		movieResolver,
		userRepository,
		sharingPolicy,
		filterCompiler,
		aggregator,
	)
	feedUC := usecase_feed.New(watchRepository, groupRepository)
	groupUC := usecase_group.New(groupRepository)

	sessionCache := infra_session_cache.New(redisConn, cfg.Session.KeyPrefix)
	authService := session_auth.New(sessionCache, &cfg.Session.TTL)
	authMiddleware := http_auth_middleware.New(authService)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_watch.New(watchUC, authMiddleware))
	controllerPool.Add(http_group.New(groupUC, authMiddleware))
	controllerPool.Add(http_feed.New(feedUC, authMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
