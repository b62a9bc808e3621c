//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/2beens/fitjournal/internal"
	"github.com/2beens/fitjournal/internal/config"
	"github.com/2beens/fitjournal/pkg"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testUsername = "mila"
	testPassword = "test-secret"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		Environment:                 "testing",
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresHost:                "localhost",
		PostgresPort:                postgresPort,
		PostgresDBName:              "fitjournal",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       9001,
		LoginRateLimitAllowedPerMin: 100,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=fitjournal",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/fitjournal?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	if _, err := db.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	passwordHash, err := pkg.HashPassword(testPassword)
	if err != nil {
		return "", fmt.Errorf("hash test password: %s", err)
	}
	if _, err := db.Exec(
		`INSERT INTO public.app_user (username, password_hash) VALUES ($1, $2);`,
		testUsername, passwordHash,
	); err != nil {
		return "", fmt.Errorf("insert test user: %s", err)
	}

	if db.Ping() != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.app_user
(
    id            SERIAL PRIMARY KEY,
    username      VARCHAR NOT NULL UNIQUE,
    password_hash VARCHAR NOT NULL
);

ALTER TABLE public.app_user OWNER TO postgres;

CREATE TABLE public.user_goals
(
    user_id               INTEGER PRIMARY KEY REFERENCES public.app_user (id),
    calorie_goal          INTEGER NOT NULL,
    protein_goal_grams    INTEGER NOT NULL,
    workout_goal_per_week INTEGER NOT NULL
);

ALTER TABLE public.user_goals OWNER TO postgres;

CREATE TABLE public.meal_entry
(
    id            SERIAL PRIMARY KEY,
    user_id       INTEGER NOT NULL REFERENCES public.app_user (id),
    day           DATE    NOT NULL,
    calories      INTEGER NOT NULL,
    protein_grams INTEGER NOT NULL,
    meal_time     VARCHAR
);

ALTER TABLE public.meal_entry OWNER TO postgres;
CREATE INDEX ix_meal_entry_user_day ON public.meal_entry (user_id, day);

CREATE TABLE public.workout_entry
(
    id               SERIAL PRIMARY KEY,
    user_id          INTEGER NOT NULL REFERENCES public.app_user (id),
    day              DATE    NOT NULL,
    kind             VARCHAR NOT NULL,
    duration_minutes INTEGER NOT NULL,
    calories_burned  INTEGER NOT NULL
);

ALTER TABLE public.workout_entry OWNER TO postgres;
CREATE INDEX ix_workout_entry_user_day ON public.workout_entry (user_id, day);

CREATE TABLE public.weight_entry
(
    id        SERIAL PRIMARY KEY,
    user_id   INTEGER NOT NULL REFERENCES public.app_user (id),
    day       DATE             NOT NULL,
    weight_kg DOUBLE PRECISION NOT NULL
);

ALTER TABLE public.weight_entry OWNER TO postgres;
CREATE INDEX ix_weight_entry_user_day ON public.weight_entry (user_id, day);

CREATE TABLE public.habit
(
    id             UUID PRIMARY KEY,
    user_id        INTEGER NOT NULL REFERENCES public.app_user (id),
    name           VARCHAR NOT NULL,
    frequency      VARCHAR NOT NULL,
    weekdays       INTEGER[],
    completions    DATE[],
    streak         INTEGER NOT NULL DEFAULT 0,
    last_completed DATE
);

ALTER TABLE public.habit OWNER TO postgres;
CREATE INDEX ix_habit_user ON public.habit (user_id);
`
