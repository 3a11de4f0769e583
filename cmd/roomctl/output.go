package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
)

const timeLayout = "02.01.2006 15:04"

func printRooms(out io.Writer, rooms []*model.Room) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCAPACITY\tAVAILABLE\tEQUIPMENT")
	for _, room := range rooms {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n",
			room.ID, room.Name, room.Capacity, room.Available, strings.Join(room.Equipment, ", "))
	}
	return w.Flush()
}

func printReservations(out io.Writer, reservations []*model.Reservation, loc *time.Location) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROOM\tUSER\tSTART\tEND\tMINUTES\tSTATUS\tPURPOSE")
	for _, res := range reservations {
		room := res.RoomID
		if res.Room != nil {
			room = res.Room.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			res.ID,
			room,
			res.UserID,
			res.StartTime.In(loc).Format(timeLayout),
			res.EndTime.In(loc).Format(timeLayout),
			timerange.DurationMinutes(res.StartTime, res.EndTime),
			res.Status,
			res.Purpose,
		)
	}
	return w.Flush()
}

// printConflicts выводит пересечения, если ошибка - занятость зала
func printConflicts(out io.Writer, err error, loc *time.Location) {
	conflicts := service.ConflictsOf(err)
	if len(conflicts) == 0 {
		return
	}
	fmt.Fprintln(out, "Conflicting reservations:")
	printReservations(out, conflicts, loc)
}
