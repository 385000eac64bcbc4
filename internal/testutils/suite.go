package testutils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testDatabase = "hackathon_test"

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedClient   *mongo.Client
	sharedDB       *mongo.Database
	sharedConfig   *config.Config
)

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	Client   *mongo.Client
	DB       *mongo.Database
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite initializes (once) the shared MongoDB container and returns a per-suite wrapper.
// The container runs as a single-node replica set so change streams work.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedMongoContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		Client:   sharedClient,
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// RunWithContainerCleanup runs the package's tests and purges the shared
// container afterwards, also when the run is interrupted. Call it from TestMain.
func RunWithContainerCleanup(m *testing.M, pkg string) int {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	go func() {
		<-interrupted
		log.Printf("%s tests interrupted, purging MongoDB container", pkg)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer tears down Docker resources when the whole test run ends.
func CleanupSharedContainer() {
	log.Println("Starting Docker container cleanup...")
	if sharedClient != nil {
		_ = sharedClient.Disconnect(context.Background())
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		} else {
			log.Println("Successfully purged Docker container")
		}
		sharedResource = nil
		sharedPool = nil
		sharedClient = nil
		sharedDB = nil
	}
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per *suite* (not process). We only clean the database here;
// the container persists across suites for speed.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every collection but keeps the indexes.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, c := range []string{
		database.CollectionRegistrations,
		database.CollectionUsers,
		database.CollectionSettings,
		database.CollectionLogs,
	} {
		_, _ = s.DB.Collection(c).DeleteMany(ctx, bson.M{})
	}
}

// ------------------------------
// Shared MongoDB container init
// ------------------------------

func initSharedMongoContainer() error {
	// 1) Create Docker pool
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	// 2) Run MongoDB as a one-member replica set
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7.0",
		Cmd:        []string{"--replSet", "rs0", "--bind_ip_all"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start mongo: %w", err)
	}
	sharedResource = resource

	// 3) Build URI. directConnection keeps the driver off the in-container
	// member address.
	hostPort := resource.GetPort("27017/tcp")
	uri := fmt.Sprintf("mongodb://127.0.0.1:%s/?directConnection=true", hostPort)

	// 4) Wait for mongod, initiate the replica set, then connect through
	// database.Initialize (which creates the indexes)
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		boot, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		defer boot.Disconnect(context.Background())

		err = boot.Database("admin").RunCommand(ctx, bson.D{{Key: "replSetInitiate", Value: bson.M{
			"_id":     "rs0",
			"members": bson.A{bson.M{"_id": 0, "host": "127.0.0.1:27017"}},
		}}}).Err()
		if err != nil && !alreadyInitialized(err) {
			return err
		}

		var hello struct {
			IsWritablePrimary bool `bson:"isWritablePrimary"`
		}
		if err := boot.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil {
			return err
		}
		if !hello.IsWritablePrimary {
			return fmt.Errorf("replica set has no primary yet")
		}

		client, db, err := database.Initialize(ctx, uri, testDatabase, nil)
		if err != nil {
			return err
		}
		sharedClient = client
		sharedDB = db
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	// 5) Build a shared config for tests that need one
	sharedConfig = &config.Config{
		Environment:   "test",
		Port:          "8080",
		LogLevel:      "debug",
		MongoURI:      uri,
		MongoDatabase: testDatabase,
	}

	log.Printf("Shared MongoDB ready on %s", hostPort)
	return nil
}

func alreadyInitialized(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return ce.Code == 23 || ce.Name == "AlreadyInitialized"
	}
	return false
}
