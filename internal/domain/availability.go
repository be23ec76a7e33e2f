package domain

// AvailableRooms возвращает номера, которые включены администратором,
// вмещают guests гостей и не имеют неотмененных броней, пересекающихся с rng.
func AvailableRooms(rooms []*Room, bookings []*Booking, rng DateRange, guests int) []*Room {
	busy := make(map[string]struct{})
	for _, b := range bookings {
		if b.Blocks() && b.Range().Overlaps(rng) {
			busy[b.RoomID] = struct{}{}
		}
	}

	res := make([]*Room, 0, len(rooms))
	for _, r := range rooms {
		if !r.Available || r.MaxGuests < guests {
			continue
		}
		if _, ok := busy[r.ID]; ok {
			continue
		}
		res = append(res, r)
	}

	return res
}
