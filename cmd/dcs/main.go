package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"dcs/internal/aggregate"
	"dcs/internal/metrics"
	"dcs/internal/sink"
	"dcs/internal/source"
	"dcs/internal/table"
)

// Config holds CLI flags for the batch job.
type Config struct {
	InputSource string // sample|file|kafka
	InputFile   string
	Sinks       string // comma list: stdout|file|kafka
	OutputDir   string
	OutputFile  string
	// Gold table
	TableBackend string // none|memory|pebble|badger
	PebbleDir    string
	BadgerDir    string
	// Kafka
	KafkaBootstrap string
	GroupID        string
	TopicOrders    string
	TopicRows      string
	MaxRecords     int
	IdleTimeoutSec int
	// Observability
	MetricsAddr string
}

func main() {
	cfg := readFlags()
	if err := run(cfg); err != nil {
		log.Fatalf("dcs failed: %v", err)
	}
}

func readFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.InputSource, "input-source", "sample", "orders source: sample|file|kafka")
	flag.StringVar(&cfg.InputFile, "input-file", "bronze.orders.jsonl", "orders JSONL file (input-source=file)")
	flag.StringVar(&cfg.Sinks, "sinks", "stdout", "comma-separated sinks: stdout|file|kafka")
	flag.StringVar(&cfg.OutputDir, "output-dir", "./gold", "output directory for the file sink")
	flag.StringVar(&cfg.OutputFile, "output-file", "fct_daily_customer_sales.jsonl", "output filename for the file sink")
	flag.StringVar(&cfg.TableBackend, "table-backend", "none", "gold table backend: none|memory|pebble|badger")
	flag.StringVar(&cfg.PebbleDir, "pebble-dir", "./data/gold-pebble", "pebble table directory")
	flag.StringVar(&cfg.BadgerDir, "badger-dir", "./data/gold-badger", "badger table directory")
	flag.StringVar(&cfg.KafkaBootstrap, "kafka-bootstrap", "localhost:9092", "kafka bootstrap servers")
	flag.StringVar(&cfg.GroupID, "group-id", "dcs", "consumer group id")
	flag.StringVar(&cfg.TopicOrders, "topic-orders", "bronze.orders", "kafka topic for raw orders input")
	flag.StringVar(&cfg.TopicRows, "topic-rows", "gold.fct_daily_customer_sales", "kafka topic for aggregated rows (compacted)")
	flag.IntVar(&cfg.MaxRecords, "max-records", 10000, "max orders drained per kafka batch")
	flag.IntVar(&cfg.IdleTimeoutSec, "idle-timeout", 5, "kafka idle seconds that close the batch")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "listen address for /metrics and /healthz (empty disables)")
	flag.Parse()
	return cfg
}

func run(cfg Config) error {
	log.Printf("starting dcs with input=%s sinks=%s table=%s", cfg.InputSource, cfg.Sinks, cfg.TableBackend)

	mreg := metrics.NewRegistry()
	if cfg.MetricsAddr != "" {
		go func() {
			http.Handle("/metrics", mreg.Handler())
			http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
			})
			_ = http.ListenAndServe(cfg.MetricsAddr, nil)
		}()
	}

	src, err := buildSource(cfg)
	if err != nil {
		return err
	}
	snk, err := buildSinks(cfg)
	if err != nil {
		return err
	}

	t0 := time.Now()
	orders, err := src.ReadBatch()
	if err != nil {
		mreg.BatchFailures.Inc()
		return fmt.Errorf("read batch: %w", err)
	}
	mreg.OrdersRead.Add(float64(len(orders)))
	log.Printf("read %d orders", len(orders))

	rows, err := aggregate.Aggregate(orders)
	if err != nil {
		mreg.BatchFailures.Inc()
		return fmt.Errorf("aggregate: %w", err)
	}

	var completed int64
	for _, r := range rows {
		completed += r.OrderCount
	}
	mreg.OrdersFiltered.Add(float64(int64(len(orders)) - completed))
	mreg.RowsEmitted.Add(float64(len(rows)))

	if err := snk.Write(rows); err != nil {
		mreg.BatchFailures.Inc()
		return fmt.Errorf("write rows: %w", err)
	}

	if cfg.TableBackend != "none" && cfg.TableBackend != "" {
		if err := publishTable(cfg, rows); err != nil {
			mreg.BatchFailures.Inc()
			return fmt.Errorf("publish table: %w", err)
		}
		log.Printf("gold table (%s) replaced with %d rows", cfg.TableBackend, len(rows))
	}

	mreg.Batches.Inc()
	mreg.BatchLatencySec.Observe(time.Since(t0).Seconds())
	mreg.LastBatchRows.Set(float64(len(rows)))
	log.Printf("batch done: %d orders in, %d completed, %d rows out in %s", len(orders), completed, len(rows), time.Since(t0))
	return nil
}

func buildSource(cfg Config) (source.Source, error) {
	switch cfg.InputSource {
	case "sample", "":
		return source.SampleSource{}, nil
	case "file":
		return source.NewFileSource(cfg.InputFile), nil
	case "kafka":
		idle := time.Duration(cfg.IdleTimeoutSec) * time.Second
		return source.NewKafkaSource(cfg.KafkaBootstrap, cfg.GroupID, cfg.TopicOrders, cfg.MaxRecords, idle), nil
	default:
		return nil, fmt.Errorf("unknown input source %q", cfg.InputSource)
	}
}

func buildSinks(cfg Config) (sink.Sink, error) {
	var sinks []sink.Sink
	for _, name := range strings.Split(cfg.Sinks, ",") {
		switch strings.TrimSpace(name) {
		case "stdout":
			sinks = append(sinks, sink.NewTextSink(os.Stdout))
		case "file":
			fs, err := sink.NewFileSink(cfg.OutputDir, cfg.OutputFile)
			if err != nil {
				return nil, fmt.Errorf("init file sink: %w", err)
			}
			sinks = append(sinks, fs)
		case "kafka":
			sinks = append(sinks, sink.NewKafkaSink(cfg.KafkaBootstrap, cfg.TopicRows))
		case "":
		default:
			return nil, fmt.Errorf("unknown sink %q", name)
		}
	}
	if len(sinks) == 0 {
		return nil, fmt.Errorf("no sinks configured")
	}
	return sink.NewMultiSink(sinks...), nil
}

func publishTable(cfg Config, rows []aggregate.Row) error {
	var st table.Store
	switch cfg.TableBackend {
	case "memory":
		st = table.NewMemoryStore()
	case "pebble":
		ps, err := table.NewPebbleStore(cfg.PebbleDir)
		if err != nil {
			return fmt.Errorf("init pebble: %w", err)
		}
		defer ps.Close()
		st = ps
	case "badger":
		bs, err := table.NewBadgerStore(cfg.BadgerDir)
		if err != nil {
			return fmt.Errorf("init badger: %w", err)
		}
		defer bs.Close()
		st = bs
	default:
		return fmt.Errorf("unknown table backend %q", cfg.TableBackend)
	}
	return st.Replace(rows)
}
