package seeder

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// validIdentifier validates SQL identifiers (database names) before they are written unquoted
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// sqlDate renders as a DATE literal instead of a DATETIME one.
type sqlDate time.Time

func isValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// quoteReserved wraps column names that collide with MySQL keywords.
func quoteReserved(col string) string {
	return "`" + col + "`"
}

var tableColumns = map[string][]string{
	TableRoute:                {"RouteID", "OriginAirportCode", "DestinationAirportCode", "DistanceKM", "DurationMin"},
	TableAircraft:             {"AircraftID", "Model", "Capacity", quoteReserved("Status")},
	TablePassenger:            {"PassengerID", "FirstName", "LastName", "Phone", "Email", "PassportNumber", "LoyaltyStatus"},
	TableBaggageFee:           {"FeeID", quoteReserved("Type"), "MinWeightKG", "MaxWeightKG", "Fee"},
	TableFlight:               {"FlightID", "FlightNumber", "DepartureDateTime", "ArrivalDateTime", quoteReserved("Status"), "RouteID", "AircraftID"},
	TableSeat:                 {"SeatID", "SeatNumber", "Class", "IsAvailable", "AircraftID"},
	TableCrewMember:           {"CrewID", quoteReserved("Name"), quoteReserved("Role"), "Certification", "Contact"},
	TableBooking:              {"BookingID", "BookingCode", "SeatClass", "BookingDate", "Price", "FlightID", "PassengerID", "SeatID", quoteReserved("Status")},
	TableFlightCrewAssignment: {"AssignmentID", "FlightID", "CrewID"},
	TableBaggage:              {"BaggageID", "BookingID", "TagNumber", "FeeID", quoteReserved("Type"), "WeightKG", quoteReserved("Status")},
}

// Writer renders a Dataset as MySQL statements.
type Writer struct {
	database string
}

func NewWriter(database string) (*Writer, error) {
	if !isValidIdentifier(database) {
		return nil, fmt.Errorf("invalid database name: %s", database)
	}
	return &Writer{database: database}, nil
}

// Statements returns the USE statement followed by one INSERT per row,
// tables in the given order and rows in creation order.
func (w *Writer) Statements(ds *Dataset, order []string) ([]string, error) {
	lines := []string{fmt.Sprintf("USE %s;", w.database)}

	for _, table := range order {
		rows, err := tableRows(ds, table)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			stmt, err := insertStatement(table, tableColumns[table], row)
			if err != nil {
				return nil, fmt.Errorf("failed to render %s row: %w", table, err)
			}
			lines = append(lines, stmt)
		}
	}

	return lines, nil
}

func tableRows(ds *Dataset, table string) ([][]interface{}, error) {
	var rows [][]interface{}

	switch table {
	case TableRoute:
		for _, r := range ds.Routes {
			rows = append(rows, []interface{}{r.ID, r.Origin, r.Destination, r.DistanceKM, r.DurationMin})
		}
	case TableAircraft:
		for _, a := range ds.Aircraft {
			rows = append(rows, []interface{}{a.ID, a.Model, a.Capacity, a.Status})
		}
	case TablePassenger:
		for _, p := range ds.Passengers {
			rows = append(rows, []interface{}{p.ID, p.FirstName, p.LastName, p.Phone, p.Email, p.PassportNumber, p.LoyaltyStatus})
		}
	case TableBaggageFee:
		for _, b := range ds.FeeBands {
			rows = append(rows, []interface{}{b.ID, b.Type, b.MinWeightKG, b.MaxWeightKG, b.Fee})
		}
	case TableFlight:
		for _, f := range ds.Flights {
			rows = append(rows, []interface{}{f.ID, f.FlightNumber, f.Departure, f.Arrival, f.Status, f.RouteID, f.AircraftID})
		}
	case TableSeat:
		for _, s := range ds.Seats {
			rows = append(rows, []interface{}{s.ID, s.SeatNumber, s.Class, s.IsAvailable, s.AircraftID})
		}
	case TableCrewMember:
		for _, c := range ds.Crew {
			rows = append(rows, []interface{}{c.ID, c.Name, c.Role, c.Certification, c.Contact})
		}
	case TableBooking:
		for _, b := range ds.Bookings {
			rows = append(rows, []interface{}{b.ID, b.BookingCode, b.SeatClass, sqlDate(b.BookingDate), b.Price, b.FlightID, b.PassengerID, b.SeatID, b.Status})
		}
	case TableFlightCrewAssignment:
		for _, a := range ds.Assignments {
			rows = append(rows, []interface{}{a.ID, a.FlightID, a.CrewID})
		}
	case TableBaggage:
		for _, b := range ds.Baggage {
			rows = append(rows, []interface{}{b.ID, b.BookingID, b.TagNumber, b.FeeID, b.Type, b.WeightKG, b.Status})
		}
	default:
		return nil, fmt.Errorf("unknown table: %s", table)
	}

	return rows, nil
}

func insertStatement(table string, columns []string, values []interface{}) (string, error) {
	literals := make([]interface{}, len(values))
	for i, v := range values {
		literal, err := formatValue(v)
		if err != nil {
			return "", fmt.Errorf("column %s: %w", columns[i], err)
		}
		literals[i] = squirrel.Expr(literal)
	}

	query, _, err := squirrel.Insert(table).
		Columns(columns...).
		Values(literals...).
		ToSql()
	if err != nil {
		return "", err
	}
	return query + ";", nil
}

// formatValue formats a value as an inline SQL literal
func formatValue(val interface{}) (string, error) {
	switch v := val.(type) {
	case nil:
		return "NULL", nil
	case *int:
		if v == nil {
			return "NULL", nil
		}
		return fmt.Sprintf("%d", *v), nil
	case string:
		return quoteString(v), nil
	case int, int64:
		return fmt.Sprintf("%d", v), nil
	case float64:
		return fmt.Sprintf("%.2f", v), nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case sqlDate:
		return quoteString(time.Time(v).Format(dateLayout)), nil
	case time.Time:
		return quoteString(v.Format(timestampLayout)), nil
	case AircraftStatus:
		return enumLiteral(v, aircraftStatuses)
	case FlightStatus:
		return enumLiteral(v, flightStatuses)
	case BookingStatus:
		return enumLiteral(v, bookingStatuses)
	case SeatClass:
		return enumLiteral(v, seatClasses)
	case BaggageType:
		return enumLiteral(v, baggageTypes)
	case BaggageStatus:
		return enumLiteral(v, baggageStatuses)
	case CrewRole:
		return enumLiteral(v, crewRoles)
	default:
		return "", fmt.Errorf("unsupported value type %T", val)
	}
}

// enumLiteral quotes the label of v, which must be one of known.
func enumLiteral[T interface {
	comparable
	fmt.Stringer
}](v T, known []T) (string, error) {
	if !slices.Contains(known, v) {
		return "", fmt.Errorf("unknown %T value %s", v, v)
	}
	return quoteString(v.String()), nil
}

func quoteString(s string) string {
	// Escape single quotes and backslashes
	escaped := strings.ReplaceAll(s, "'", "''")
	escaped = strings.ReplaceAll(escaped, "\\", "\\\\")
	return "'" + escaped + "'"
}

// WriteFile writes all statements, one per line, in a single write.
// A path of "-" writes to stdout.
func WriteFile(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"

	if path == "-" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
