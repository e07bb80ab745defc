// Command inspect prints every checkin stored in badger, read-only, so it can run
// next to a live server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"sharemyshows-live/domain"
	"sharemyshows-live/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Settings struct {
	BadgerFilepath string        `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

func main() {
	var settings Settings
	if err := envconfig.Process("inspect", &settings); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	activeOnly := flag.Bool("active", false, "Only list active checkins")
	showID := flag.Int64("show", 0, "Only list checkins of this show record")
	flag.Parse()

	// BypassLockGuard lets the dump run while the server holds the lock
	db, err := badger.Open(badger.DefaultOptions(settings.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), settings.Timeout)
	defer cancel()

	checkins, err := repositories.NewCheckinRepository(db).AllCheckins(ctx)
	if err != nil {
		log.Fatalf("Failed to read checkins: %v", err)
	}
	users := repositories.NewUserRepository(db)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Show", "State", "Checked in", "Location", "Updated", "Share with"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	for _, c := range checkins {
		if (*activeOnly && !c.IsActive) || (*showID != 0 && c.ShowID != domain.ShowID(*showID)) {
			continue
		}
		table.Append([]string{
			username(ctx, users, c.UserID),
			strconv.FormatInt(int64(c.ShowID), 10),
			state(c.State()),
			c.CheckedInAt.Format(time.RFC3339),
			location(c.Location),
			timestamp(c.LastLocationUpdate),
			shareWith(c.ShareWith),
		})
		rows++
	}
	table.Render()
	color.Gray.Printf("%d checkin(s)\n", rows)
}

func username(ctx context.Context, users *repositories.UserRepository, id domain.UserID) string {
	user, err := users.GetUser(ctx, id)
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("%s (#%d)", user.Username, id)
}

func state(s domain.SharingState) string {
	switch s {
	case domain.Sharing:
		return color.Green.Render(s.String())
	case domain.CheckedInNoLocation:
		return color.Yellow.Render(s.String())
	default:
		return color.Gray.Render(s.String())
	}
}

func location(l *domain.Location) string {
	if l == nil {
		return "-"
	}
	return fmt.Sprintf("%.5f, %.5f", l.Latitude, l.Longitude)
}

func timestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func shareWith(list domain.ShareList) string {
	if list.AllFriends() {
		return "all friends"
	}
	if len(list) == 0 {
		return "nobody"
	}
	ids := make([]string, 0, len(list))
	for _, id := range list {
		ids = append(ids, strconv.FormatInt(int64(id), 10))
	}
	return strings.Join(ids, ", ")
}
