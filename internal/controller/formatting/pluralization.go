package formatting

func pluralize(count int, one, few, many string) string {
	if count < 0 {
		count = -count
	}
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeReservations возвращает правильное склонение слова "бронь"
func PluralizeReservations(count int) string {
	return pluralize(count, "бронь", "брони", "броней")
}

// PluralizeRooms возвращает правильное склонение слова "зал"
func PluralizeRooms(count int) string {
	return pluralize(count, "зал", "зала", "залов")
}

// PluralizePeople возвращает правильное склонение слова "человек"
func PluralizePeople(count int) string {
	return pluralize(count, "человек", "человека", "человек")
}
