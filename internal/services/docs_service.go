package services

import (
	"bytes"
	"fmt"
	"time"

	"touring/internal/checks"
	"touring/internal/domain"
	"touring/internal/domain/models"
	"touring/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the travel-path PDF for a customer.
type DocsService struct {
	Booking   BookingService
	RequestID string
	// Loader replaces the database lookup; tests use it.
	Loader func(domain.Session) (itineraryDocData, error)
	Now    func() time.Time
}

type itineraryDocData struct {
	Session domain.Session
	Path    models.TravelPath
	Verdict checks.ItineraryResult
}

// GenerateItinerary returns the PDF bytes and a download filename.
func (s DocsService) GenerateItinerary(sess domain.Session) ([]byte, string, error) {
	data, err := s.load(sess)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", fmt.Sprintf("customer=%d", sess.CustomerID))
	return buildItineraryPDF(data, s.now())
}

func (s DocsService) load(sess domain.Session) (itineraryDocData, error) {
	if s.Loader != nil {
		return s.Loader(sess)
	}
	path, err := s.Booking.TravelPath(sess)
	if err != nil {
		return itineraryDocData{}, err
	}
	return itineraryDocData{
		Session: sess,
		Path:    path,
		Verdict: checks.ExplainItinerary(path.Flights, path.Hotels, path.Buses),
	}, nil
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildItineraryPDF(d itineraryDocData, at time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Customer : %s (#%d)", safe(d.Session.Name, "-"), d.Session.CustomerID)))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Printed  : "+at.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	var total int64
	section := func(title string, header []string, widths []float64, rows [][]string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		if len(rows) == 0 {
			pdf.SetFont("Helvetica", "I", 11)
			pdf.Cell(0, 6, "No bookings")
			pdf.Ln(9)
			return
		}
		pdf.SetFont("Helvetica", "B", 11)
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range rows {
			for i, col := range row {
				pdf.CellFormat(widths[i], 7, tr(col), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	flights := make([][]string, 0, len(d.Path.Flights))
	for _, f := range d.Path.Flights {
		total += f.Price
		flights = append(flights, []string{f.FlightNum, f.FromCity, f.ArriveCity, utils.FormatPrice(f.Price)})
	}
	section("Flights", []string{"Flight", "From", "To", "Price"}, []float64{40, 50, 50, 40}, flights)

	buses := make([][]string, 0, len(d.Path.Buses))
	for _, b := range d.Path.Buses {
		total += b.Price
		buses = append(buses, []string{b.BusNum, b.Location, utils.FormatPrice(b.Price)})
	}
	section("Buses", []string{"Bus", "Location", "Price"}, []float64{40, 100, 40}, buses)

	hotels := make([][]string, 0, len(d.Path.Hotels))
	for _, h := range d.Path.Hotels {
		total += h.Price
		hotels = append(hotels, []string{h.HotelNum, h.Location, utils.FormatPrice(h.Price)})
	}
	section("Hotels", []string{"Hotel", "Location", "Price"}, []float64{40, 100, 40}, hotels)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatPrice(total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr(VerdictText(d.Verdict)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ITINERARY_%d_%s.pdf", d.Session.CustomerID, utils.SafeFilenamePart(d.Session.Name))
	return buf.Bytes(), filename, nil
}

// VerdictText is the user-facing explanation of an itinerary verdict.
func VerdictText(r checks.ItineraryResult) string {
	switch r.Reason {
	case checks.ReasonComplete:
		return "Route is complete."
	case checks.ReasonUnbalanced:
		return "Route is incomplete: the booked flights cannot be taken one after another in a single trip."
	case checks.ReasonStrayHotel:
		return fmt.Sprintf("Route is incomplete: hotel in %s is not on any booked flight.", r.Location)
	case checks.ReasonStrayBus:
		return fmt.Sprintf("Route is incomplete: bus in %s is not on any booked flight.", r.Location)
	default:
		return "Route status unknown."
	}
}

func safe(v, fallback string) string {
	if utils.NormalizeSpace(v) == "" {
		return fallback
	}
	return v
}
