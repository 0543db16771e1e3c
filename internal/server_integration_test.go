package internal_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/2beens/coachstats/internal"
	"github.com/2beens/coachstats/internal/coaching/engagement"
	"github.com/2beens/coachstats/internal/coaching/streak"
	"github.com/2beens/coachstats/internal/config"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

const (
	serverPort = 9000
	serverHost = "127.0.0.1"

	integrationTestsEnv = "COACHSTATS_INTEGRATION_TESTS"
	testDBName          = "coachstats"

	subjectAna  = "6f1c1b38-3c4e-4d0a-9d0f-6a1e2b9c7a01"
	subjectSerj = "9a3e7d52-0c1b-4f7e-8b6d-2d4c5e6f7a02"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type ServerTestSuite struct {
	suite.Suite

	DB          *sql.DB
	redisClient *redis.Client
	dockerPool  *dockertest.Pool
	server      *internal.Server
	teardown    []func()
}

// starts postgres and redis in docker, enabled with COACHSTATS_INTEGRATION_TESTS=true
func TestServerTestSuite(t *testing.T) {
	if os.Getenv(integrationTestsEnv) != "true" {
		t.Skipf("integration tests disabled, set %s=true to run them", integrationTestsEnv)
	}
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupSuite() {
	ctx := context.Background()
	s.teardown = make([]func(), 0)

	var err error
	s.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}
	if err = s.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := s.redisSetup()
	if err != nil {
		s.cleanup()
		log.Fatalf("failed to setup redis: %s", err)
	}

	pgPort, err := s.postgresSetup()
	if err != nil {
		s.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := &config.Config{
		Environment:            "development",
		Host:                   serverHost,
		Port:                   serverPort,
		PostgresHost:           "localhost",
		PostgresPort:           pgPort,
		PostgresDBName:         testDBName,
		MigrateSchema:          true,
		RedisHost:              "localhost",
		RedisPort:              redisPort,
		PrometheusMetricsHost:  "localhost",
		PrometheusMetricsPort:  "0",
		RateLimitAllowedPerMin: 1000,
		AllowedOrigins:         []string{"http://localhost:8080"},
	}
	s.server, err = internal.NewServer(ctx, internal.NewServerParams{
		Config:      cfg,
		VersionInfo: "test-version-info",
	})
	if err != nil {
		s.cleanup()
		log.Fatalf("new server: %s", err)
	}

	// schema is in place once NewServer returns
	if _, err := s.DB.Exec(seedSQL); err != nil {
		s.cleanup()
		log.Fatalf("seed: %s", err)
	}

	s.server.Serve(cfg.Host, cfg.Port)
	if err := s.dockerPool.Retry(func() error {
		resp, err := http.Get(serverEndpoint + "/version")
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}); err != nil {
		s.cleanup()
		log.Fatalf("server not reachable: %s", err)
	}
}

func (s *ServerTestSuite) TearDownSuite() {
	s.cleanup()
}

func (s *ServerTestSuite) cleanup() {
	if s.DB != nil {
		_ = s.DB.Close()
	}
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func (s *ServerTestSuite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}
	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	s.redisClient = redis.NewClient(&redis.Options{Addr: "localhost:" + redisPort})
	if err := s.dockerPool.Retry(func() error {
		return s.redisClient.Ping(context.Background()).Err()
	}); err != nil {
		return "", fmt.Errorf("connect to redis: %w", err)
	}

	return redisPort, nil
}

func (s *ServerTestSuite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}
	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	s.DB, err = sql.Open("postgres", fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName,
	))
	if err != nil {
		return "", fmt.Errorf("open db: %w", err)
	}

	if err := s.dockerPool.Retry(s.DB.Ping); err != nil {
		return "", fmt.Errorf("connect to db: %w", err)
	}

	return pgPort, nil
}

func (s *ServerTestSuite) getJSON(path string, target any) int {
	resp, err := http.Get(serverEndpoint + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK && target != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(target))
	}
	return resp.StatusCode
}

func (s *ServerTestSuite) TestStreak() {
	var res streak.Result
	s.Require().Equal(http.StatusOK, s.getJSON("/coaching/subjects/"+subjectAna+"/streak", &res))
	s.Equal(2, res.CurrentStreak)
	s.Equal(2, res.LongestStreak)

	s.Equal(http.StatusNotFound, s.getJSON("/coaching/subjects/00000000-0000-0000-0000-000000000000/streak", nil))
	s.Equal(http.StatusBadRequest, s.getJSON("/coaching/subjects/not-a-uuid/streak", nil))
}

func (s *ServerTestSuite) TestLeaderboard_Cached() {
	var ranked []engagement.RankedScore
	s.Require().Equal(http.StatusOK, s.getJSON("/coaching/leaderboard?limit=5", &ranked))
	s.Require().Len(ranked, 2)
	s.Equal(subjectAna, ranked[0].SubjectID)
	s.Equal(1, ranked[0].Rank)
	s.Equal(subjectSerj, ranked[1].SubjectID)

	cacheKey := fmt.Sprintf("coachstats::leaderboard::%s::5", time.Now().UTC().Format(time.DateOnly))
	exists, err := s.redisClient.Exists(context.Background(), cacheKey).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)

	var cached []engagement.RankedScore
	s.Require().Equal(http.StatusOK, s.getJSON("/coaching/leaderboard?limit=5", &cached))
	s.Equal(ranked, cached)
}

func (s *ServerTestSuite) TestUnknownPath() {
	s.Equal(http.StatusNotFound, s.getJSON("/nope", nil))
}

const seedSQL = `
INSERT INTO subject (id, name, checkin_frequency_days, active) VALUES
    ('6f1c1b38-3c4e-4d0a-9d0f-6a1e2b9c7a01', 'Ana', 7, TRUE),
    ('9a3e7d52-0c1b-4f7e-8b6d-2d4c5e6f7a02', 'Serj', 7, TRUE);

INSERT INTO activity_log (id, subject_id, activity_date, duration_minutes, status) VALUES
    ('act-1', '6f1c1b38-3c4e-4d0a-9d0f-6a1e2b9c7a01', current_date - 1, 45, 'completed'),
    ('act-2', '6f1c1b38-3c4e-4d0a-9d0f-6a1e2b9c7a01', current_date - 2, 30, 'completed');

INSERT INTO check_in (id, subject_id, submitted_at, diet_adherence, workout_adherence) VALUES
    ('ci-1', '6f1c1b38-3c4e-4d0a-9d0f-6a1e2b9c7a01', now() - interval '3 days', 9, 9);

INSERT INTO goal (id, subject_id, title, status) VALUES
    ('goal-1', '9a3e7d52-0c1b-4f7e-8b6d-2d4c5e6f7a02', 'bench 100', 'completed');
`
