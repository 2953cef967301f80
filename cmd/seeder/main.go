// Seeder bulk-loads a JSON fixture file into the store through the
// same command service the API uses, so every record passes the same
// validation. Hotels are loaded concurrently; each hotel's room types
// and rooms are loaded in order because they need the parent ids.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hoteldesk/internal/adapters/observability"
	"hoteldesk/internal/app"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/shared"
	mysqlrepo "hoteldesk/internal/storage/mysql"
)

type fixture struct {
	Hotels []hotelFixture      `json:"hotels"`
	Guests []domain.GuestPatch `json:"guests"`
}

type hotelFixture struct {
	domain.HotelPatch
	RoomTypes []roomTypeFixture `json:"room_types"`
}

type roomTypeFixture struct {
	domain.RoomTypePatch
	Rooms []domain.RoomPatch `json:"rooms"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var fx fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	svc := app.NewCommandService(mysqlrepo.New(db), nil)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, hf := range fx.Hotels {
		hf := hf

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := seedHotel(ctx, svc, hf); err != nil {
				log.Warn().Err(err).Msg("seed hotel failed")
			}
		}()
	}
	wg.Wait()

	for _, gp := range fx.Guests {
		if _, err := svc.CreateGuest(ctx, gp); err != nil {
			log.Warn().Err(err).Msg("seed guest failed")
		}
	}

	log.Info().Msg("seeding completed")
}

func seedHotel(ctx context.Context, svc *app.CommandService, hf hotelFixture) error {
	h, err := svc.CreateHotel(ctx, hf.HotelPatch)
	if err != nil {
		return err
	}
	log.Info().Int64("id", h.ID).Str("name", h.Name).Msg("hotel seeded")

	for _, tf := range hf.RoomTypes {
		tf.HotelID = &h.ID
		rt, err := svc.CreateRoomType(ctx, tf.RoomTypePatch)
		if err != nil {
			return err
		}
		for _, rp := range tf.Rooms {
			rp.HotelID = &h.ID
			rp.TypeID = &rt.ID
			if _, err := svc.CreateRoom(ctx, rp); err != nil {
				return err
			}
		}
	}
	return nil
}
