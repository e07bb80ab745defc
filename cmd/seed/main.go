// Command seed loads users, show records and friendships from a JSON fixture into
// badger, then prints a development token for every seeded user.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"sharemyshows-live/auth"
	"sharemyshows-live/domain"
	"sharemyshows-live/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	JWTSecret      string        `env:"JWT_SECRET,required=true"`
	TokenDuration  time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

type Friendship struct {
	A      domain.UserID                 `json:"a"`
	B      domain.UserID                 `json:"b"`
	Status repositories.FriendshipStatus `json:"status"`
}

type Fixture struct {
	Users       []domain.User       `json:"users"`
	Shows       []domain.ShowRecord `json:"shows"`
	Friendships []Friendship        `json:"friendships"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	path := flag.String("fixture", "cmd/seed/testdata/fixture.json", "JSON fixture to load")
	flag.Parse()

	fixture, err := readFixture(*path)
	if err != nil {
		return err
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	if err := load(context.Background(), db, fixture); err != nil {
		return err
	}
	color.Green.Printf("Seeded %d users, %d shows, %d friendships\n",
		len(fixture.Users), len(fixture.Shows), len(fixture.Friendships))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Username", "Token"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, user := range fixture.Users {
		token, err := auth.GenerateToken(config.JWTSecret, user.ID, config.TokenDuration)
		if err != nil {
			return fmt.Errorf("token for user %d: %w", user.ID, err)
		}
		table.Append([]string{strconv.FormatInt(int64(user.ID), 10), user.Username, token})
	}
	table.Render()
	return nil
}

func readFixture(path string) (Fixture, error) {
	var fixture Fixture
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture, fmt.Errorf("reading fixture: %w", err)
	}
	if err := json.Unmarshal(data, &fixture); err != nil {
		return fixture, fmt.Errorf("decoding fixture: %w", err)
	}
	return fixture, nil
}

func load(ctx context.Context, db *badger.DB, fixture Fixture) error {
	users := repositories.NewUserRepository(db)
	for _, user := range fixture.Users {
		if err := users.SaveUser(ctx, user); err != nil {
			return err
		}
	}
	shows := repositories.NewShowRepository(db)
	for _, show := range fixture.Shows {
		if err := shows.SaveShow(ctx, show); err != nil {
			return err
		}
	}
	friends := repositories.NewFriendshipRepository(db)
	for _, f := range fixture.Friendships {
		if err := friends.SaveFriendship(ctx, f.A, f.B, f.Status); err != nil {
			return err
		}
	}
	return nil
}
