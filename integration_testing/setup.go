package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/coachbit/backend/internal"
	"github.com/coachbit/backend/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
	testDBName = "coachbit_test"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (*Suite, error) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		return nil, fmt.Errorf("failed to setup redis: %s", err)
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		return nil, fmt.Errorf("failed to setup postgres: %s", err)
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
		return nil, fmt.Errorf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite, nil
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
		Environment:                  "development",
		Host:                         serverHost,
		Port:                         serverPort,
		RedisHost:                    "localhost",
		RedisPort:                    redisPort,
		PostgresPort:                 postgresPort,
		PostgresHost:                 "localhost",
		PostgresDBName:               testDBName,
		PrometheusMetricsHost:        "localhost",
		PrometheusMetricsPort:        "9001",
		ModifyRateLimitAllowedPerMin: 1000,
		SessionTTLHours:              1,
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
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
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
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)

	var db *sql.DB
	if err := s.dockerPool.Retry(func() error {
		var openErr error
		db, openErr = sql.Open("postgres", dsn)
		if openErr != nil {
			return openErr
		}
		return db.Ping()
	}); err != nil {
		return "", fmt.Errorf("connect to postgres: %s", err)
	}
	s.DB = db

	res, err := db.Exec(initSQL)
	if err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("get rows affected: %s", err)
	}

	log.Printf("postgres setup result: %d\n", numRows)

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.workout_program
(
    id         VARCHAR PRIMARY KEY,
    title      VARCHAR NOT NULL DEFAULT '',
    document   JSONB   NOT NULL,
    version    BIGINT  NOT NULL DEFAULT 1,
    created_at TIMESTAMP WITHOUT TIME ZONE NOT NULL,
    updated_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.workout_program OWNER TO postgres;

CREATE TABLE public.nutrition_plan
(
    id         VARCHAR PRIMARY KEY,
    title      VARCHAR NOT NULL DEFAULT '',
    document   JSONB   NOT NULL,
    version    BIGINT  NOT NULL DEFAULT 1,
    created_at TIMESTAMP WITHOUT TIME ZONE NOT NULL,
    updated_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.nutrition_plan OWNER TO postgres;

CREATE TABLE public.exercise_catalog
(
    id            VARCHAR PRIMARY KEY,
    name          VARCHAR NOT NULL,
    muscle_groups VARCHAR[] NOT NULL DEFAULT '{}',
    equipment     VARCHAR NOT NULL DEFAULT '',
    category      VARCHAR NOT NULL DEFAULT '',
    position      INTEGER NOT NULL DEFAULT 0
);

ALTER TABLE public.exercise_catalog OWNER TO postgres;
CREATE INDEX ix_exercise_catalog_name ON public.exercise_catalog (lower(name));

CREATE TABLE public.food_catalog
(
    id                VARCHAR PRIMARY KEY,
    name              VARCHAR NOT NULL,
    unit              VARCHAR NOT NULL DEFAULT 'g',
    tags              VARCHAR[] NOT NULL DEFAULT '{}',
    calories_per_100g INTEGER NOT NULL DEFAULT 0,
    protein_per_100g  NUMERIC NOT NULL DEFAULT 0,
    carbs_per_100g    NUMERIC NOT NULL DEFAULT 0,
    fat_per_100g      NUMERIC NOT NULL DEFAULT 0,
    position          INTEGER NOT NULL DEFAULT 0
);

ALTER TABLE public.food_catalog OWNER TO postgres;
CREATE INDEX ix_food_catalog_name ON public.food_catalog (lower(name));

INSERT INTO public.exercise_catalog (id, name, muscle_groups, equipment, category, position) VALUES
    ('bench_press', 'Barbell Bench Press', '{chest,triceps}', 'barbell', 'compound', 1),
    ('incline_db_press', 'Incline Dumbbell Press', '{chest,shoulders}', 'dumbbell', 'compound', 2),
    ('back_squat', 'Barbell Back Squat', '{quads,glutes}', 'barbell', 'compound', 1);

INSERT INTO public.food_catalog (id, name, unit, tags, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, position) VALUES
    ('chicken_breast', 'Chicken Breast', 'g', '{protein,meat}', 165, 31, 0, 3.6, 1),
    ('white_rice', 'White Rice (cooked)', 'g', '{carbs}', 130, 2.7, 28.2, 0.3, 1),
    ('olive_oil', 'Olive Oil', 'ml', '{fat}', 884, 0, 0, 100, 1);
`
