package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/app"
	"github.com/Freeeeeet/room_booking_bot/internal/config"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newApp(cfg *config.Config, logger *zap.Logger, out io.Writer) *cli.App {
	rt := &runtime{cfg: cfg, logger: logger, out: out}
	return newAppWithRuntime(rt)
}

func newAppWithRuntime(rt *runtime) *cli.App {
	return &cli.App{
		Name:   "roomctl",
		Usage:  "Manage rooms and reservations of the room booking bot",
		Writer: rt.out,
		After: func(c *cli.Context) error {
			rt.close()
			return nil
		},
		Commands: []*cli.Command{
			migrateCommand(rt),
			seedCommand(rt),
			roomsCommand(rt),
			reservationsCommand(rt),
			checkCommand(rt),
			resetCommand(rt),
		},
	}
}

func migrateCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations (postgres storage only)",
		Action: func(c *cli.Context) error {
			if rt.cfg.StorageDriver != config.StoragePostgres {
				return errors.New("migrate requires STORAGE_DRIVER=postgres")
			}

			pool, err := app.OpenPostgres(c.Context, rt.cfg.GetDBDSN())
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator, err := app.NewMigrator(pool, rt.logger)
			if err != nil {
				return err
			}
			defer migrator.Close()

			if err := migrator.Run(c.Context); err != nil {
				return err
			}

			version, err := migrator.Version(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "Schema version: %d\n", version)
			return nil
		},
	}
}

func seedCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Create demo rooms if there are none",
		Action: func(c *cli.Context) error {
			svc, err := rt.services(c.Context)
			if err != nil {
				return err
			}

			count, err := svc.Rooms.SeedDemo(c.Context)
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Fprintln(rt.out, "Rooms already exist, nothing to seed")
				return nil
			}
			fmt.Fprintf(rt.out, "Created %d demo rooms\n", count)
			return nil
		},
	}
}

func roomsCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:    "rooms",
		Aliases: []string{"r"},
		Usage:   "Manage rooms",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List rooms",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "Include disabled rooms"},
				},
				Action: func(c *cli.Context) error {
					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					var rooms []*model.Room
					if c.Bool("all") {
						rooms, err = svc.Rooms.List(c.Context)
					} else {
						rooms, err = svc.Rooms.ListAvailable(c.Context)
					}
					if err != nil {
						return err
					}
					return printRooms(rt.out, rooms)
				},
			},
			{
				Name:  "add",
				Usage: "Add a room",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.IntFlag{Name: "capacity", Aliases: []string{"c"}, Required: true},
					&cli.StringSliceFlag{Name: "equipment", Aliases: []string{"e"}, Usage: "Equipment item (repeatable or comma separated)"},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "image-url"},
				},
				Action: func(c *cli.Context) error {
					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					room, err := svc.Rooms.Create(c.Context, service.RoomInput{
						Name:        c.String("name"),
						Description: c.String("description"),
						Capacity:    c.Int("capacity"),
						Equipment:   c.StringSlice("equipment"),
						ImageURL:    c.String("image-url"),
					})
					if err != nil {
						return err
					}
					return printRooms(rt.out, []*model.Room{room})
				},
			},
			{
				Name:      "update",
				Usage:     "Update a room",
				ArgsUsage: "ROOM_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}},
					&cli.IntFlag{Name: "capacity", Aliases: []string{"c"}},
					&cli.StringSliceFlag{Name: "equipment", Aliases: []string{"e"}},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "image-url"},
					&cli.BoolFlag{Name: "enable"},
					&cli.BoolFlag{Name: "disable"},
				},
				Action: func(c *cli.Context) error {
					roomID := c.Args().First()
					if roomID == "" {
						return errors.New("ROOM_ID is required")
					}
					if c.Bool("enable") && c.Bool("disable") {
						return errors.New("--enable and --disable are mutually exclusive")
					}

					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					room, err := svc.Rooms.Update(c.Context, roomID, roomUpdateFromFlags(c))
					if err != nil {
						return err
					}
					return printRooms(rt.out, []*model.Room{room})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a room (its reservations are kept)",
				ArgsUsage: "ROOM_ID",
				Action: func(c *cli.Context) error {
					roomID := c.Args().First()
					if roomID == "" {
						return errors.New("ROOM_ID is required")
					}

					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					if err := svc.Rooms.Delete(c.Context, roomID); err != nil {
						return err
					}
					fmt.Fprintf(rt.out, "Room %s deleted\n", roomID)
					return nil
				},
			},
			{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "Search available rooms by name, capacity or equipment",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Fuzzy match on room name"},
					&cli.IntFlag{Name: "min-capacity", Aliases: []string{"c"}},
					&cli.StringFlag{Name: "equipment", Aliases: []string{"e"}},
				},
				Action: func(c *cli.Context) error {
					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					var rooms []*model.Room
					switch {
					case c.IsSet("name"):
						rooms, err = svc.Rooms.SearchByName(c.Context, c.String("name"))
					case c.IsSet("min-capacity"):
						rooms, err = svc.Rooms.SearchByCapacity(c.Context, c.Int("min-capacity"))
					case c.IsSet("equipment"):
						rooms, err = svc.Rooms.SearchByEquipment(c.Context, c.String("equipment"))
					default:
						return errors.New("one of --name, --min-capacity or --equipment is required")
					}
					if err != nil {
						return err
					}
					return printRooms(rt.out, rooms)
				},
			},
		},
	}
}

func roomUpdateFromFlags(c *cli.Context) service.RoomUpdate {
	var update service.RoomUpdate
	if c.IsSet("name") {
		name := c.String("name")
		update.Name = &name
	}
	if c.IsSet("capacity") {
		capacity := c.Int("capacity")
		update.Capacity = &capacity
	}
	if c.IsSet("equipment") {
		update.Equipment = c.StringSlice("equipment")
	}
	if c.IsSet("description") {
		description := c.String("description")
		update.Description = &description
	}
	if c.IsSet("image-url") {
		imageURL := c.String("image-url")
		update.ImageURL = &imageURL
	}
	if c.Bool("enable") || c.Bool("disable") {
		available := c.Bool("enable")
		update.Available = &available
	}
	return update
}

func reservationsCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:    "reservations",
		Aliases: []string{"res"},
		Usage:   "Manage reservations",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List reservations (active ones by default)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "All reservations of a user, newest first"},
					&cli.StringFlag{Name: "room", Aliases: []string{"r"}, Usage: "Active reservations of a room"},
					&cli.GenericFlag{
						Name:  "date",
						Usage: "Active reservations starting on `DATE` (dd.mm.yyyy or yyyy-mm-dd)",
						Value: &FlexibleTimestamp{Layouts: dateLayouts, Location: rt.cfg.Location},
					},
					&cli.GenericFlag{
						Name:  "active",
						Usage: "Active reservations not finished at `TIME` (default: now)",
						Value: &FlexibleTimestamp{Layouts: dateTimeLayouts, Location: rt.cfg.Location},
					},
				},
				Action: func(c *cli.Context) error {
					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					var reservations []*model.Reservation
					switch {
					case c.IsSet("user"):
						reservations, err = svc.Reservations.ListByUser(c.Context, c.String("user"))
					case c.IsSet("room"):
						reservations, err = svc.Reservations.ListByRoom(c.Context, c.String("room"))
					case c.IsSet("date"):
						reservations, err = svc.Reservations.ListOnDate(c.Context, *c.Value("date").(*time.Time))
					case c.IsSet("active"):
						reservations, err = svc.Reservations.ListActive(c.Context, *c.Value("active").(*time.Time))
					default:
						reservations, err = svc.Reservations.ListActiveNow(c.Context)
					}
					if err != nil {
						return err
					}
					return printReservations(rt.out, reservations, rt.cfg.Location)
				},
			},
			{
				Name:  "create",
				Usage: "Create a reservation",
				Flags: append(intervalFlags(rt),
					&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "purpose", Aliases: []string{"p"}},
				),
				Action: func(c *cli.Context) error {
					start, end, err := intervalFromFlags(c)
					if err != nil {
						return err
					}

					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					reservation, err := svc.Reservations.Create(c.Context, service.CreateReservationInput{
						RoomID:  c.String("room"),
						UserID:  c.String("user"),
						Start:   start,
						End:     end,
						Purpose: c.String("purpose"),
					})
					if err != nil {
						printConflicts(rt.out, err, rt.cfg.Location)
						return err
					}
					return printReservations(rt.out, []*model.Reservation{reservation}, rt.cfg.Location)
				},
			},
			{
				Name:      "cancel",
				Usage:     "Cancel a reservation",
				ArgsUsage: "RESERVATION_ID",
				Action: func(c *cli.Context) error {
					reservationID := c.Args().First()
					if reservationID == "" {
						return errors.New("RESERVATION_ID is required")
					}

					svc, err := rt.services(c.Context)
					if err != nil {
						return err
					}

					reservation, err := svc.Reservations.Cancel(c.Context, reservationID)
					if err != nil {
						return err
					}
					return printReservations(rt.out, []*model.Reservation{reservation}, rt.cfg.Location)
				},
			},
		},
	}
}

func checkCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check whether a room is free for an interval",
		Flags: append(intervalFlags(rt),
			&cli.StringFlag{Name: "exclude", Usage: "Reservation ID to ignore"},
		),
		Action: func(c *cli.Context) error {
			start, end, err := intervalFromFlags(c)
			if err != nil {
				return err
			}

			svc, err := rt.services(c.Context)
			if err != nil {
				return err
			}

			availability, err := svc.Reservations.CheckAvailability(c.Context, c.String("room"), start, end, c.String("exclude"))
			if err != nil {
				return err
			}

			if availability.Available {
				fmt.Fprintln(rt.out, "Room is free")
				return nil
			}
			fmt.Fprintf(rt.out, "Room is busy, %d conflicting reservation(s):\n", len(availability.Conflicts))
			return printReservations(rt.out, availability.Conflicts, rt.cfg.Location)
		},
	}
}

func intervalFlags(rt *runtime) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "room", Aliases: []string{"r"}, Required: true},
		&cli.GenericFlag{
			Name:     "from",
			Aliases:  []string{"a"},
			Usage:    "Start `TIME` (dd.mm.yyyy hh:mm, yyyy-mm-dd hh:mm or RFC3339)",
			Required: true,
			Value:    &FlexibleTimestamp{Layouts: dateTimeLayouts, Location: rt.cfg.Location},
		},
		&cli.GenericFlag{
			Name:    "till",
			Aliases: []string{"b"},
			Usage:   "End `TIME`",
			Value:   &FlexibleTimestamp{Layouts: dateTimeLayouts, Location: rt.cfg.Location},
		},
		&cli.DurationFlag{
			Name:    "duration",
			Aliases: []string{"d"},
			Usage:   "Length of the interval when --till is not given",
			Value:   time.Hour,
		},
	}
}

func intervalFromFlags(c *cli.Context) (time.Time, time.Time, error) {
	from := c.Value("from").(*time.Time)
	if from == nil {
		return time.Time{}, time.Time{}, errors.New("--from is required")
	}

	if till := c.Value("till").(*time.Time); till != nil {
		if c.IsSet("duration") {
			return time.Time{}, time.Time{}, errors.New("--till and --duration are mutually exclusive")
		}
		return *from, *till, nil
	}

	return *from, timerange.AddMinutes(*from, int(c.Duration("duration")/time.Minute)), nil
}

// collections - документы, которые можно сбросить командой reset
var collections = []string{storage.KeyRooms, storage.KeyReservations, storage.KeyUsers}

func resetCommand(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "reset",
		Usage:     "Delete whole collections (" + strings.Join(collections, ", ") + ")",
		ArgsUsage: "COLLECTION...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "Reset every collection"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Confirm data removal"},
		},
		Action: func(c *cli.Context) error {
			keys := c.Args().Slice()
			if c.Bool("all") {
				keys = collections
			}
			if len(keys) == 0 {
				return errors.New("COLLECTION or --all is required")
			}
			for _, key := range keys {
				if !slices.Contains(collections, key) {
					return fmt.Errorf("unknown collection %q", key)
				}
			}
			if !c.Bool("yes") {
				return errors.New("reset removes data, pass --yes to confirm")
			}

			if _, err := rt.services(c.Context); err != nil {
				return err
			}

			for _, key := range keys {
				if err := rt.store.Delete(c.Context, key); err != nil {
					return fmt.Errorf("reset %s: %w", key, err)
				}
				rt.logger.Info("Collection reset", zap.String("collection", key))
				fmt.Fprintf(rt.out, "Collection %s reset\n", key)
			}
			return nil
		},
	}
}
