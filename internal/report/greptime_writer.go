package report

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"asteroid-sim/internal/history"
	"asteroid-sim/internal/impact"
)

const defaultGreptimePort = 4001

type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
	Close() error
}

// GreptimeDBWriter writes one row per analysis to GreptimeDB via the ingester client.
type GreptimeDBWriter struct {
	client greptimeClient
	table  string
}

// NewGreptimeDBWriter connects to endpoint ("host" or "host:port").
func NewGreptimeDBWriter(endpoint, database, tableName string) (*GreptimeDBWriter, error) {
	host, port := endpoint, defaultGreptimePort
	if h, p, err := net.SplitHostPort(endpoint); err == nil {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid greptime port %q: %w", p, err)
		}
		host, port = h, n
	}
	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("greptime client: %w", err)
	}
	if tableName == "" {
		tableName = "impact_analyses"
	}
	return &GreptimeDBWriter{client: client, table: tableName}, nil
}

// Write inserts a single analysis row.
func (w *GreptimeDBWriter) Write(r history.Record) error {
	return w.WriteBatch([]history.Record{r})
}

// WriteBatch inserts multiple analysis rows.
func (w *GreptimeDBWriter) WriteBatch(rows []history.Record) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := w.buildTable(rows)
	if err != nil {
		return err
	}
	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] Write failed: %v", err)
		return err
	}
	log.Printf("[GreptimeDBWriter] wrote %d rows", len(rows))
	return nil
}

// Close releases the ingester connection.
func (w *GreptimeDBWriter) Close() error {
	return w.client.Close()
}

func (w *GreptimeDBWriter) buildTable(rows []history.Record) (*table.Table, error) {
	tbl, err := table.New(w.table)
	if err != nil {
		return nil, err
	}
	columns := []struct {
		name string
		kind string
		typ  types.ColumnType
	}{
		{"asteroid_name", "tag", types.STRING},
		{"asteroid_type", "tag", types.STRING},
		{"record_id", "field", types.STRING},
		{"diameter_m", "field", types.FLOAT64},
		{"velocity_kms", "field", types.FLOAT64},
		{"distance_km", "field", types.FLOAT64},
		{"impact_probability", "field", types.FLOAT64},
		{"is_hit", "field", types.BOOLEAN},
		{"energy_megatons", "field", types.FLOAT64},
		{"crater_m", "field", types.FLOAT64},
		{"severity", "field", types.STRING},
		{"ts", "time", types.TIMESTAMP_MILLISECOND},
	}
	for _, c := range columns {
		var err error
		switch c.kind {
		case "tag":
			err = tbl.AddTagColumn(c.name, c.typ)
		case "field":
			err = tbl.AddFieldColumn(c.name, c.typ)
		default:
			err = tbl.AddTimestampColumn(c.name, c.typ)
		}
		if err != nil {
			return nil, fmt.Errorf("add column %s: %w", c.name, err)
		}
	}

	for _, r := range rows {
		res := r.Result
		err := tbl.AddRow(
			r.Input.Name,
			string(r.Input.Type),
			r.ID,
			r.Input.Diameter,
			r.Input.Velocity,
			r.Input.Distance,
			res.ImpactProbability,
			res.IsHit,
			res.KineticEnergyMegatons,
			res.CraterSizeMeters,
			string(impact.SeverityFor(res.KineticEnergyMegatons)),
			r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("add row %s: %w", r.ID, err)
		}
	}
	return tbl, nil
}
