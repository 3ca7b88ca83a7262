package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"touring/internal/domain/models"
	"touring/internal/utils"
)

func (c *Console) flightTable(rows []models.FlightLeg, empty string) {
	out := make([][]string, 0, len(rows))
	for _, f := range rows {
		out = append(out, []string{f.FlightNum, utils.FormatPrice(f.Price), f.FromCity, f.ArriveCity})
	}
	c.table([]string{"FLIGHT", "PRICE", "FROM", "TO"}, out, empty)
}

func (c *Console) busTable(rows []models.BusLeg, empty string) {
	out := make([][]string, 0, len(rows))
	for _, b := range rows {
		out = append(out, []string{b.BusNum, b.Location, utils.FormatPrice(b.Price)})
	}
	c.table([]string{"BUS", "LOCATION", "PRICE"}, out, empty)
}

func (c *Console) hotelTable(rows []models.HotelStay, empty string) {
	out := make([][]string, 0, len(rows))
	for _, h := range rows {
		out = append(out, []string{h.HotelNum, h.Location, utils.FormatPrice(h.Price)})
	}
	c.table([]string{"HOTEL", "LOCATION", "PRICE"}, out, empty)
}

const (
	noBookings = "<!> No bookings"
	noOffers   = "<!> Nothing on offer"
)

// table writes an aligned table. An empty table prints the empty line instead,
// or just the header when empty is "".
func (c *Console) table(header []string, rows [][]string, empty string) {
	if empty != "" && len(rows) == 0 {
		c.println(empty)
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	_ = w.Flush()
}
